// Package scoped limits Postgres queries to rows that belong to a site.
//
// A Manager is built from a Model description. It finds the relation leading to
// the site (a relation named "site" or "sites", or an explicit dotted path such
// as "release.package.site") and generates the joins needed to filter by site ID.
//
//	var articleModel = scoped.Model{
//		Name:    "Article",
//		Table:   "articles",
//		Columns: []string{"id", "title", "site_id"},
//		Relations: []scoped.Relation{
//			{Name: "site", Kind: scoped.ForeignKey, Column: "site_id"},
//		},
//	}
//
//	articles := scoped.MustNewManager[Article](pool, articleModel)
//	items, err := articles.ByRequest(r).All(r.Context())
//
// ByRequest relies on the site middleware. When the request has no site the
// query is empty and All returns no rows without touching the database.
package scoped
