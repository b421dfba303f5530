// Package mongo connects to MongoDB with the official v2 driver. sitesd uses
// it when sites live in a collection instead of a Postgres table
// (site.MongoStore).
package mongo
