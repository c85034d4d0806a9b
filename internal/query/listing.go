package query

import "github.com/Yosipmikecolin/app-web-wesense/internal/entities"

// Listing is a result together with the effective parameters that produced
// it and the 1-based window of records shown.
type Listing struct {
	Result
	Params Params
	First  int
	Last   int
}

// List runs Users and clamps the page into range, re-slicing when the
// requested page was past the end.
func List(records []entities.User, p Params) Listing {
	p = p.Normalize()
	res := Users(records, p)
	if page := ClampPage(p.Page, res.TotalPages); page != p.Page {
		p.Page = page
		res = Users(records, p)
	}

	first, last := Window(res, p)
	return Listing{Result: res, Params: p, First: first, Last: last}
}
