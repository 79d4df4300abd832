package model

// Customer is a person who can own reservations.  A customer with
// ID 0 has not been persisted yet; the repository assigns the
// identifier on first save and it is never reused afterwards.
//
// Fields:
//  ID        – unique positive identifier, 0 until saved.
//  FirstName – given name.
//  LastName  – family name.
//  Email     – contact email, matched case-insensitively by lookups.
//  Phone     – contact phone number, free text.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
