package models

// ModelTypeRegistry lists the schema in creation order: parents before the relations
// referencing them.
var ModelTypeRegistry = []any{
	&Landlord{},
	&Property{},
	&Tenant{},
	&LivesIn{},
	&LeasesFrom{},
	&SeedRun{},
}
