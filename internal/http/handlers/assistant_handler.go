// README: Concierge assistant handler; delegates to the hosted LLM runtime
// and dispatches recognised quote intents to the quote calculator.
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"greentours/internal/ai"
	"greentours/internal/modules/aiusage"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/pricing"
)

const fallbackReply = "Bula! I couldn't quite work that out — could you tell me " +
	"where you're travelling from and to, and on what date?"

type AssistantHandler struct {
	provider ai.LLMProvider
	catalog  *catalog.Catalog
	pricing  *pricing.Service
	usage    *aiusage.Service
}

// NewAssistantHandler wires the assistant boundary. provider may be nil
// (no API key configured); usage may be nil (no database, unmetered).
func NewAssistantHandler(provider ai.LLMProvider, cat *catalog.Catalog, pricingSvc *pricing.Service, usage *aiusage.Service) *AssistantHandler {
	return &AssistantHandler{provider: provider, catalog: cat, pricing: pricingSvc, usage: usage}
}

type assistantReq struct {
	Message string `json:"message"`
}

type assistantResp struct {
	Reply  string         `json:"reply"`
	Intent string         `json:"intent"`
	Quote  *pricing.Quote `json:"quote,omitempty"`
}

func (h *AssistantHandler) Message(c *gin.Context) {
	if h.provider == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}
	var req assistantReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	if h.usage != nil {
		visitorID := c.GetHeader("X-Visitor-ID")
		if visitorID == "" {
			visitorID = c.ClientIP()
		}
		if err := h.usage.UseMessage(c.Request.Context(), visitorID); err == aiusage.ErrQuotaExhausted {
			writeError(c, http.StatusTooManyRequests, err.Error())
			return
		} else if err != nil {
			log.Printf("assistant usage check failed: %v", err)
		}
	}

	result, err := h.provider.ParseTransferIntent(c.Request.Context(), req.Message, h.contextMap())
	if err != nil {
		// Provider trouble degrades to a polite fallback, never a 5xx.
		log.Printf("assistant provider error: %v", err)
		writeJSON(c, http.StatusOK, assistantResp{Reply: fallbackReply, Intent: "chat"})
		return
	}

	resp := assistantResp{Reply: result.Reply, Intent: result.Intent}
	if q := h.tryQuote(c, result); q != nil {
		resp.Quote = q
	}
	writeJSON(c, http.StatusOK, resp)
}

// tryQuote dispatches a fully specified quote intent to the calculator.
// Anything missing or unquotable just leaves the text reply as-is.
func (h *AssistantHandler) tryQuote(c *gin.Context, r *ai.IntentResult) *pricing.Quote {
	if r.Intent != "quote" || r.RouteID == nil || r.Date == nil || r.Time == nil {
		return nil
	}
	svc := catalog.ServicePrivate
	if r.ServiceType != nil {
		parsed, err := catalog.ParseServiceType(*r.ServiceType)
		if err == nil {
			svc = parsed
		}
	}
	passengers := r.Passengers
	if passengers < 1 {
		passengers = 1
	}
	q, err := h.pricing.Calculate(c.Request.Context(), pricing.QuoteRequest{
		RouteID:    *r.RouteID,
		Service:    svc,
		Passengers: passengers,
		Date:       *r.Date,
		Time:       *r.Time,
	})
	if err != nil {
		log.Printf("assistant quote dispatch failed: %v", err)
		return nil
	}
	return q
}

func (h *AssistantHandler) contextMap() map[string]string {
	ids := make([]string, 0)
	for _, r := range h.catalog.Routes() {
		if r.Active {
			ids = append(ids, r.ID)
		}
	}
	return map[string]string{
		"current_time": time.Now().Format(time.RFC3339),
		"route_ids":    strings.Join(ids, ", "),
	}
}
