package store

// Store bundles the record stores handed to bootstrap and the services.
type Store struct {
	Complaints *Complaints
	Catalog    *Catalog
}

// New constructs empty stores.
func New() *Store {
	return &Store{
		Complaints: NewComplaints(),
		Catalog:    NewCatalog(),
	}
}
