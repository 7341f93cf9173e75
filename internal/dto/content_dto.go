package dto

type UpsertPageRequest struct {
	Slug      string                 `json:"slug"`
	Title     string                 `json:"title"`
	Kind      string                 `json:"kind"`
	Blocks    map[string]interface{} `json:"blocks"`
	Published *bool                  `json:"published,omitempty"`
}

type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type ResolveInquiryRequest struct {
	AdminNote string `json:"admin_note,omitempty"`
}
