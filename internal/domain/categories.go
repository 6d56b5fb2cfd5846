package domain

// Category names stored in the dictionary table. Payment categories
// split repayments into principal and interest buckets; plan categories
// pick the actual-activity source for performance reports. The two
// groups share one table but are disjoint namespaces.
const (
	// payment categories
	CategoryPrincipal = "principal"
	CategoryInterest  = "interest"
	// plan categories
	CategoryDisbursement = "disbursement"
	CategoryCollection   = "collection"
)

// KnownCategories lists every category name the services recognize.
// The dictionary table is checked against this set at startup.
var KnownCategories = []string{
	CategoryPrincipal,
	CategoryInterest,
	CategoryDisbursement,
	CategoryCollection,
}
