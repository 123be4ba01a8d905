package types

// ------------------------------
// Response Types
// ------------------------------

// SearchResultNutrient is a nutrient value inside a search hit.
type SearchResultNutrient struct {
	NutrientID     int     `json:"nutrientId"`
	NutrientName   string  `json:"nutrientName"`
	NutrientNumber string  `json:"nutrientNumber"`
	UnitName       string  `json:"unitName"`
	Value          float64 `json:"value"`
	DerivationCode string  `json:"derivationCode,omitempty"`
}

// SearchResultFood is a single search hit.
type SearchResultFood struct {
	FdcID                  int                    `json:"fdcId"`
	DataType               string                 `json:"dataType"`
	Description            string                 `json:"description"`
	FoodCode               string                 `json:"foodCode,omitempty"`
	PublicationDate        string                 `json:"publishedDate,omitempty"`
	ScientificName         string                 `json:"scientificName,omitempty"`
	BrandOwner             string                 `json:"brandOwner,omitempty"`
	BrandName              string                 `json:"brandName,omitempty"`
	GtinUpc                string                 `json:"gtinUpc,omitempty"`
	Ingredients            string                 `json:"ingredients,omitempty"`
	NdbNumber              int                    `json:"ndbNumber,omitempty"`
	AdditionalDescriptions string                 `json:"additionalDescriptions,omitempty"`
	FoodCategory           string                 `json:"foodCategory,omitempty"`
	ServingSize            float64                `json:"servingSize,omitempty"`
	ServingSizeUnit        string                 `json:"servingSizeUnit,omitempty"`
	Score                  float64                `json:"score,omitempty"`
	FoodNutrients          []SearchResultNutrient `json:"foodNutrients,omitempty"`
}

// FoodSearchCriteria echoes the criteria the service applied.
type FoodSearchCriteria struct {
	Query      string   `json:"query"`
	DataType   []string `json:"dataType,omitempty"`
	PageSize   int      `json:"pageSize,omitempty"`
	PageNumber int      `json:"pageNumber,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
	SortOrder  string   `json:"sortOrder,omitempty"`
	BrandOwner string   `json:"brandOwner,omitempty"`
}

// SearchResult wraps the /foods/search result.
type SearchResult struct {
	FoodSearchCriteria FoodSearchCriteria `json:"foodSearchCriteria"`
	TotalHits          int                `json:"totalHits"`
	CurrentPage        int                `json:"currentPage"`
	TotalPages         int                `json:"totalPages"`
	Foods              []SearchResultFood `json:"foods"`
}

// FoodsEnvelope is the legacy object form of the /foods response.
type FoodsEnvelope struct {
	Foods []Food `json:"foods"`
}

// APISpec is the service's OpenAPI document in raw and decoded form.
type APISpec struct {
	Raw      []byte
	Document map[string]any
}

// Version returns info.version from the document, or "" if absent.
func (s *APISpec) Version() string {
	info, ok := s.Document["info"].(map[string]any)
	if !ok {
		return ""
	}
	v, _ := info["version"].(string)
	return v
}
