package dto

type ProductRequest struct {
	Title       string `form:"title"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Price       string `form:"price"`
	ImageURL    string `form:"image_url"`
}

type FeedFilter struct {
	Query    string `query:"q"`
	Category string `query:"category"`
}
