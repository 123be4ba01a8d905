package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Nutrient describes a nutrient as the service catalogues it.
type Nutrient struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Rank     int    `json:"rank,omitempty"`
	UnitName string `json:"unitName"`
}

// FoodNutrient is one nutrient value of a food. Full-format responses nest the
// nutrient definition under Nutrient; abridged responses use the flat fields.
type FoodNutrient struct {
	ID         int       `json:"id,omitempty"`
	Type       string    `json:"type,omitempty"`
	Nutrient   *Nutrient `json:"nutrient,omitempty"`
	Amount     float64   `json:"amount"`
	DataPoints int       `json:"dataPoints,omitempty"`
	Min        *float64  `json:"min,omitempty"`
	Max        *float64  `json:"max,omitempty"`
	Median     *float64  `json:"median,omitempty"`

	// Abridged format
	Number                string `json:"number,omitempty"`
	Name                  string `json:"name,omitempty"`
	UnitName              string `json:"unitName,omitempty"`
	DerivationCode        string `json:"derivationCode,omitempty"`
	DerivationDescription string `json:"derivationDescription,omitempty"`
}

// NutrientName returns the nutrient name regardless of response format.
func (n FoodNutrient) NutrientName() string {
	if n.Nutrient != nil {
		return n.Nutrient.Name
	}
	return n.Name
}

// NutrientNumber returns the nutrient number regardless of response format.
func (n FoodNutrient) NutrientNumber() string {
	if n.Nutrient != nil {
		return n.Nutrient.Number
	}
	return n.Number
}

// Unit returns the unit name regardless of response format.
func (n FoodNutrient) Unit() string {
	if n.Nutrient != nil {
		return n.Nutrient.UnitName
	}
	return n.UnitName
}

// LabelValue is a single nutrition-label entry.
type LabelValue struct {
	Value float64 `json:"value"`
}

// LabelNutrients holds per-serving values printed on branded food labels.
type LabelNutrients struct {
	Fat           *LabelValue `json:"fat,omitempty"`
	SaturatedFat  *LabelValue `json:"saturatedFat,omitempty"`
	TransFat      *LabelValue `json:"transFat,omitempty"`
	Cholesterol   *LabelValue `json:"cholesterol,omitempty"`
	Sodium        *LabelValue `json:"sodium,omitempty"`
	Carbohydrates *LabelValue `json:"carbohydrates,omitempty"`
	Fiber         *LabelValue `json:"fiber,omitempty"`
	Sugars        *LabelValue `json:"sugars,omitempty"`
	Protein       *LabelValue `json:"protein,omitempty"`
	Calcium       *LabelValue `json:"calcium,omitempty"`
	Iron          *LabelValue `json:"iron,omitempty"`
	Potassium     *LabelValue `json:"potassium,omitempty"`
	Calories      *LabelValue `json:"calories,omitempty"`
}

// MeasureUnit names the unit of a food portion.
type MeasureUnit struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Name         string `json:"name"`
}

// FoodPortion is a household measure with its gram weight.
type FoodPortion struct {
	ID                 int          `json:"id"`
	Amount             float64      `json:"amount,omitempty"`
	DataPoints         int          `json:"dataPoints,omitempty"`
	GramWeight         float64      `json:"gramWeight"`
	Modifier           string       `json:"modifier,omitempty"`
	PortionDescription string       `json:"portionDescription,omitempty"`
	SequenceNumber     int          `json:"sequenceNumber,omitempty"`
	MeasureUnit        *MeasureUnit `json:"measureUnit,omitempty"`
}

// FoodCategory groups foundation and SR legacy foods.
type FoodCategory struct {
	ID          int    `json:"id,omitempty"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

// Food is a food detail record. The service returns a different shape per data
// type (Branded, Foundation, SR Legacy, Survey); fields absent from a given
// type are left zero.
type Food struct {
	FdcID           int            `json:"fdcId"`
	Description     string         `json:"description"`
	DataType        string         `json:"dataType"`
	PublicationDate string         `json:"publicationDate,omitempty"`
	FoodClass       string         `json:"foodClass,omitempty"`
	FoodNutrients   []FoodNutrient `json:"foodNutrients,omitempty"`
	FoodPortions    []FoodPortion  `json:"foodPortions,omitempty"`

	// Branded
	BrandOwner               string          `json:"brandOwner,omitempty"`
	BrandName                string          `json:"brandName,omitempty"`
	GtinUpc                  string          `json:"gtinUpc,omitempty"`
	Ingredients              string          `json:"ingredients,omitempty"`
	ServingSize              float64         `json:"servingSize,omitempty"`
	ServingSizeUnit          string          `json:"servingSizeUnit,omitempty"`
	HouseholdServingFullText string          `json:"householdServingFullText,omitempty"`
	BrandedFoodCategory      string          `json:"brandedFoodCategory,omitempty"`
	MarketCountry            string          `json:"marketCountry,omitempty"`
	LabelNutrients           *LabelNutrients `json:"labelNutrients,omitempty"`

	// Foundation / SR Legacy
	NdbNumber      int           `json:"ndbNumber,omitempty"`
	ScientificName string        `json:"scientificName,omitempty"`
	FoodCategory   *FoodCategory `json:"foodCategory,omitempty"`

	// Survey (FNDDS)
	FoodCode  string `json:"foodCode,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// AbridgedFood is the compact record returned by /foods/list.
type AbridgedFood struct {
	FdcID           int            `json:"fdcId"`
	Description     string         `json:"description"`
	DataType        string         `json:"dataType"`
	PublicationDate string         `json:"publicationDate,omitempty"`
	BrandOwner      string         `json:"brandOwner,omitempty"`
	GtinUpc         string         `json:"gtinUpc,omitempty"`
	NdbNumber       string         `json:"ndbNumber,omitempty"`
	FoodCode        string         `json:"foodCode,omitempty"`
	FoodNutrients   []FoodNutrient `json:"foodNutrients,omitempty"`
}
