package entity

// StoreScope is the identity carried by an access token: the store the
// caller logged into and the owner's email.
type StoreScope struct {
	StoreName string
	Email     string
}

// Allows reports whether the scope grants access to the named store.
func (s StoreScope) Allows(storeName string) bool {
	return s.StoreName != "" && s.StoreName == storeName
}
