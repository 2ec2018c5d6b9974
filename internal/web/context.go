package web

import "net/http"

type RequestContext struct {
	IsHTMX   bool   // HX-Request header present
	TargetID string // HX-Target - where response will land
	Boosted  bool   // HX-Boosted - was this a boosted link/form?
}

func parseRequestContext(r *http.Request) RequestContext {
	return RequestContext{
		IsHTMX:   r.Header.Get("HX-Request") == "true",
		TargetID: r.Header.Get("HX-Target"),
		Boosted:  r.Header.Get("HX-Boosted") == "true",
	}
}

// wantsPartial reports whether the response should be a list fragment
// rather than a redirect back to the page.
func (c RequestContext) wantsPartial() bool {
	return c.IsHTMX && !c.Boosted
}
