// README: Immutable in-memory zone/route index built once at startup.
package catalog

// Catalog indexes zones and routes for lookup. It is built once at process
// start and never mutated afterwards, so it is safe for concurrent readers
// without locking.
type Catalog struct {
	zones   map[string]Zone
	routes  map[string]Route
	zoneIDs []string
	routeID []string
}

func New(zones []Zone, routes []Route) *Catalog {
	c := &Catalog{
		zones:  make(map[string]Zone, len(zones)),
		routes: make(map[string]Route, len(routes)),
	}
	for _, z := range zones {
		c.zones[z.ID] = z
		c.zoneIDs = append(c.zoneIDs, z.ID)
	}
	for _, r := range routes {
		c.routes[r.ID] = r
		c.routeID = append(c.routeID, r.ID)
	}
	return c
}

func (c *Catalog) Zone(id string) (Zone, error) {
	z, ok := c.zones[id]
	if !ok {
		return Zone{}, ErrZoneNotFound
	}
	return z, nil
}

func (c *Catalog) Route(id string) (Route, error) {
	r, ok := c.routes[id]
	if !ok {
		return Route{}, ErrRouteNotFound
	}
	return r, nil
}

// Zones returns all zones in load order.
func (c *Catalog) Zones() []Zone {
	out := make([]Zone, 0, len(c.zoneIDs))
	for _, id := range c.zoneIDs {
		out = append(out, c.zones[id])
	}
	return out
}

// Routes returns all routes in load order.
func (c *Catalog) Routes() []Route {
	out := make([]Route, 0, len(c.routeID))
	for _, id := range c.routeID {
		out = append(out, c.routes[id])
	}
	return out
}
