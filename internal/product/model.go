package product

// Product is one catalog entry. ID is the product's directory name under the
// products root and is carried explicitly instead of being derived from
// ImgPath. Price and Dist stay strings, exactly as stored on disk.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Dist        string `json:"dist"`
	Description string `json:"description"`
	ImgPath     string `json:"imgPath"`
	Type        string `json:"type"`
	ImgAlt      string `json:"imgAlt"`
}
