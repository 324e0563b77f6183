package domain

// Category is an entry of the item category catalog
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Condition is one of the fixed item condition grades
type Condition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category identifiers
const (
	CategoryClothing  = "clothing"
	CategoryToys      = "toys"
	CategoryFeeding   = "feeding"
	CategoryFurniture = "furniture"
	CategoryStrollers = "strollers"
	CategoryBooks     = "books"
	CategorySafety    = "safety"
	CategoryBathing   = "bathing"
	CategoryOther     = "other"
)

// Condition identifiers
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like-new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
)
