package domain

type (
	Category struct {
		ID          int
		Name        string
		Slug        string
		Description string
	}

	Product struct {
		ID           int
		CategoryID   int
		CategoryName string
		Name         string
		Slug         string
		Description  string
		Price        Money
		Image        string
		Stock        int
		Available    bool
	}
)
