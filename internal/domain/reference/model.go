package reference

// Owner y Address son datos de referencia: este servicio solo los lee.

type Owner struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

type Address struct {
	ID          int64   `json:"id"`
	Line        string  `json:"address_line"`
	SubDistrict *string `json:"subdistrict"`
	District    *string `json:"district"`
	Province    *string `json:"province"`
	Postcode    *string `json:"postcode"`
}
