package client

import "github.com/fdcapi/fdcapi/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	FoodOptions   = types.FoodOptions
	ListOptions   = types.ListOptions
	SearchOptions = types.SearchOptions
	DataType      = types.DataType
	SortField     = types.SortField
	SortOrder     = types.SortOrder
	Format        = types.Format

	// Domain entities
	Food           = types.Food
	AbridgedFood   = types.AbridgedFood
	FoodNutrient   = types.FoodNutrient
	Nutrient       = types.Nutrient
	LabelNutrients = types.LabelNutrients
	FoodPortion    = types.FoodPortion
	FoodSummary    = types.FoodSummary

	// Responses
	SearchResult         = types.SearchResult
	SearchResultFood     = types.SearchResultFood
	SearchResultNutrient = types.SearchResultNutrient
	APISpec              = types.APISpec
)

const (
	DataTypeBranded      = types.DataTypeBranded
	DataTypeFoundation   = types.DataTypeFoundation
	DataTypeSurvey       = types.DataTypeSurvey
	DataTypeSRLegacy     = types.DataTypeSRLegacy
	DataTypeExperimental = types.DataTypeExperimental

	SortByDataType      = types.SortByDataType
	SortByDescription   = types.SortByDescription
	SortByFdcID         = types.SortByFdcID
	SortByPublishedDate = types.SortByPublishedDate

	SortAsc  = types.SortAsc
	SortDesc = types.SortDesc

	FormatAbridged = types.FormatAbridged
	FormatFull     = types.FormatFull

	MaxFdcIDs    = types.MaxFdcIDs
	MaxNutrients = types.MaxNutrients
	MaxPageSize  = types.MaxPageSize
)

// ParseSearchOptions decodes search options from a request query string.
var ParseSearchOptions = types.ParseSearchOptions

// ParseListOptions decodes list options from a request query string.
var ParseListOptions = types.ParseListOptions

// ParseFoodOptions decodes food detail options from a request query string.
var ParseFoodOptions = types.ParseFoodOptions
