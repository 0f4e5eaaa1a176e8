package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
	"github.com/cargopanel/dashboard-gateway/internal/urlstate"
)

// pageLinks are canonical addresses for the current page and its neighbours,
// derived from the request URL so filter and search parameters carry over.
type pageLinks struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// listInput reads the shared list query parameters. Absent or malformed
// numbers fall back to the backend defaults.
func listInput(c echo.Context) ports.ListInput {
	in := ports.ListInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		in.Page = p
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		in.Limit = l
	}
	return in
}

// links builds self/next/prev addresses for the page the backend reported,
// rewriting only the page parameter and preserving everything else.
func links(c echo.Context, page, totalPages int) pageLinks {
	addr := urlstate.NewURLAddress(c.Request().URL)
	sync := urlstate.New(addr)

	at := func(p int) string {
		if p <= 1 {
			// Page 1 is the default; keep first-page links canonical by
			// dropping the parameter entirely.
			sync.SetQueries(map[string]*string{"page": nil})
		} else {
			sync.SetQueries(map[string]*string{"page": urlstate.String(strconv.Itoa(p))})
		}
		return addr.String()
	}

	out := pageLinks{}
	if page < totalPages {
		out.Next = at(page + 1)
	}
	if page > 1 {
		out.Prev = at(page - 1)
	}
	out.Self = at(page)
	return out
}
