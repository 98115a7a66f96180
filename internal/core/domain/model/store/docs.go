// Package store contains the Store aggregate root and its embedded Service
// catalog.
//
// A store registers with an address and a catalog of laundry services priced
// per clothing type. Customers see and can order from a store only while it
// is online and not suspended by operations; order pricing is resolved
// through the catalog (Store.PriceFor).
package store
