package domain

// TrendRow is one aggregated summary per Brand Family within a segment.
// Numeric aggregates carry a Valid flag because a group may have no usable
// values for a column; such aggregates are missing, never zero.
type TrendRow struct {
	BrandFamily string `json:"brand_family" csv:"Brand Family"`

	// Means over non-missing values only, rounded to 2 decimal places.
	SpecScore      float64 `json:"spec_score" csv:"Spec Score"`
	SpecScoreValid bool    `json:"spec_score_valid"`
	Rating         float64 `json:"rating" csv:"Rating"`
	RatingValid    bool    `json:"rating_valid"`
	Price          float64 `json:"price" csv:"Price"`
	PriceValid     bool    `json:"price_valid"`

	// Safe-mode (most frequent value, first-seen tie-break) aggregates.
	PriceRange      string  `json:"price_range" csv:"Price Range"`
	ProcessorFamily string  `json:"processor_family" csv:"Processor Family"`
	RAMGB           float64 `json:"ram_gb" csv:"RAM_GB"`
	RAMGBValid      bool    `json:"ram_gb_valid"`
	StorageGB       float64 `json:"storage_gb" csv:"Storage_GB"`
	StorageGBValid  bool    `json:"storage_gb_valid"`
}
