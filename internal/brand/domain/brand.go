package domain

// Brand is read-only reference data, fetched once and shared.
type Brand struct {
	ID      int64
	Name    string
	LogoURL string
}

// AboutPage is the static content block for a brand's info page.
type AboutPage struct {
	BrandID     int64
	Title       string
	Description string
	ImageURL    string
}

// Branch is one physical location of a brand.
type Branch struct {
	ID       int64
	BrandID  int64
	Name     string
	Location string
	Province string
}
