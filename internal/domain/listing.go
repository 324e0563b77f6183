package domain

import "time"

// MaxListingImages is the number of photo slots on a listing
const MaxListingImages = 5

// Draft field names. The order of the required ones is the order Validate reports them in.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCondition   = "condition"
	FieldAgeGroup    = "age_group"
	FieldSize        = "size"
	FieldBrand       = "brand"
	FieldImages      = "images"
)

// RequiredDraftFields lists the fields that must be non-empty before a draft can be posted
var RequiredDraftFields = []string{FieldTitle, FieldDescription, FieldCategory, FieldCondition}

// ListingStatus is the availability of a posted item
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusReserved  ListingStatus = "reserved"
	ListingStatusDonated   ListingStatus = "donated"
)

// Urgency expresses how urgently a recipient needs an item
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ListingDraft is the in-progress, unsaved item post
type ListingDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	AgeGroup    string   `json:"age_group,omitempty"`
	Size        string   `json:"size,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Images      []string `json:"images"`
}

// Clone returns a deep copy of the draft
func (d ListingDraft) Clone() ListingDraft {
	c := d
	c.Images = append([]string(nil), d.Images...)
	return c
}

// IsEmpty reports whether the draft is in its initial state
func (d ListingDraft) IsEmpty() bool {
	return d.Title == "" && d.Description == "" && d.Category == "" && d.Condition == "" &&
		d.AgeGroup == "" && d.Size == "" && d.Brand == "" && len(d.Images) == 0
}

// Listing is a posted item as stored by the marketplace backend
type Listing struct {
	ID          string        `json:"id"`
	DonorID     string        `json:"donor_id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Condition   string        `json:"condition"`
	AgeGroup    string        `json:"age_group,omitempty"`
	Size        string        `json:"size,omitempty"`
	Brand       string        `json:"brand,omitempty"`
	Images      []string      `json:"images"`
	Status      ListingStatus `json:"status"`
	Urgency     Urgency       `json:"urgency"`
	DonorRating float64       `json:"donor_rating"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewListingFromDraft builds an available listing from a submitted draft
func NewListingFromDraft(id string, draft ListingDraft, now time.Time) *Listing {
	return &Listing{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Condition:   draft.Condition,
		AgeGroup:    draft.AgeGroup,
		Size:        draft.Size,
		Brand:       draft.Brand,
		Images:      append([]string{}, draft.Images...),
		Status:      ListingStatusAvailable,
		Urgency:     UrgencyLow,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
