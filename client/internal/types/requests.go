package types

import (
	"net/url"
	"strconv"
	"strings"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
)

// DataType selects one of the FDC source databases.
type DataType string

const (
	DataTypeBranded      DataType = "Branded"
	DataTypeFoundation   DataType = "Foundation"
	DataTypeSurvey       DataType = "Survey (FNDDS)"
	DataTypeSRLegacy     DataType = "SR Legacy"
	DataTypeExperimental DataType = "Experimental"
)

// SortField is a field the list and search endpoints can sort on.
type SortField string

const (
	SortByDataType      SortField = "dataType.keyword"
	SortByDescription   SortField = "lowercaseDescription.keyword"
	SortByFdcID         SortField = "fdcId"
	SortByPublishedDate SortField = "publishedDate"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Format selects the level of detail of food records.
type Format string

const (
	FormatAbridged Format = "abridged"
	FormatFull     Format = "full"
)

// Query parameter names used by the service.
const (
	ParamAPIKey     = "api_key"
	ParamQuery      = "query"
	ParamFdcIDs     = "fdcIds"
	ParamFormat     = "format"
	ParamNutrients  = "nutrients"
	ParamDataType   = "dataType"
	ParamPageSize   = "pageSize"
	ParamPageNumber = "pageNumber"
	ParamSortBy     = "sortBy"
	ParamSortOrder  = "sortOrder"
	ParamBrandOwner = "brandOwner"
)

// ------------------------------
// Request Types
// ------------------------------

// FoodOptions holds optional parameters for food detail lookups.
type FoodOptions struct {
	Format    Format
	Nutrients []int // nutrient numbers, at most 25
}

// ListOptions holds paging and filter parameters for /foods/list.
type ListOptions struct {
	DataTypes  []DataType
	PageSize   int
	PageNumber int
	SortBy     SortField
	SortOrder  SortOrder
}

// SearchOptions holds paging and filter parameters for /foods/search.
// The search terms themselves are passed separately.
type SearchOptions struct {
	ListOptions
	BrandOwner string // only applies to Branded foods
}

// Values encodes the options as query parameters. Zero fields are omitted.
func (o FoodOptions) Values() url.Values {
	v := url.Values{}
	if o.Format != "" {
		v.Set(ParamFormat, string(o.Format))
	}
	if len(o.Nutrients) > 0 {
		v.Set(ParamNutrients, JoinInts(o.Nutrients))
	}
	return v
}

// Values encodes the options as query parameters. Zero fields are omitted.
func (o ListOptions) Values() url.Values {
	v := url.Values{}
	if len(o.DataTypes) > 0 {
		parts := make([]string, len(o.DataTypes))
		for i, dt := range o.DataTypes {
			parts[i] = string(dt)
		}
		v.Set(ParamDataType, strings.Join(parts, ","))
	}
	if o.PageSize > 0 {
		v.Set(ParamPageSize, strconv.Itoa(o.PageSize))
	}
	if o.PageNumber > 0 {
		v.Set(ParamPageNumber, strconv.Itoa(o.PageNumber))
	}
	if o.SortBy != "" {
		v.Set(ParamSortBy, string(o.SortBy))
	}
	if o.SortOrder != "" {
		v.Set(ParamSortOrder, string(o.SortOrder))
	}
	return v
}

// Values encodes the options as query parameters. Zero fields are omitted.
func (o SearchOptions) Values() url.Values {
	v := o.ListOptions.Values()
	if o.BrandOwner != "" {
		v.Set(ParamBrandOwner, o.BrandOwner)
	}
	return v
}

// ParseFoodOptions decodes FoodOptions from query parameters. Unrelated
// parameters such as api_key are ignored.
func ParseFoodOptions(v url.Values) (FoodOptions, error) {
	var o FoodOptions
	o.Format = Format(v.Get(ParamFormat))
	if s := v.Get(ParamNutrients); s != "" {
		n, err := SplitInts(s)
		if err != nil {
			return FoodOptions{}, fdcerrors.InvalidArgument("%s: %v", ParamNutrients, err)
		}
		o.Nutrients = n
	}
	return o, nil
}

// ParseListOptions decodes ListOptions from query parameters.
func ParseListOptions(v url.Values) (ListOptions, error) {
	var o ListOptions
	if s := v.Get(ParamDataType); s != "" {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				o.DataTypes = append(o.DataTypes, DataType(p))
			}
		}
	}
	var err error
	if o.PageSize, err = atoiParam(v, ParamPageSize); err != nil {
		return ListOptions{}, err
	}
	if o.PageNumber, err = atoiParam(v, ParamPageNumber); err != nil {
		return ListOptions{}, err
	}
	o.SortBy = SortField(v.Get(ParamSortBy))
	o.SortOrder = SortOrder(v.Get(ParamSortOrder))
	return o, nil
}

// ParseSearchOptions decodes SearchOptions from query parameters. The query
// term is not part of SearchOptions and is ignored.
func ParseSearchOptions(v url.Values) (SearchOptions, error) {
	lo, err := ParseListOptions(v)
	if err != nil {
		return SearchOptions{}, err
	}
	return SearchOptions{ListOptions: lo, BrandOwner: v.Get(ParamBrandOwner)}, nil
}

// JoinInts renders ids as a comma separated list.
func JoinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// SplitInts parses a comma separated list of integers.
func SplitInts(s string) ([]int, error) {
	var out []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func atoiParam(v url.Values, key string) (int, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fdcerrors.InvalidArgument("%s: %v", key, err)
	}
	return n, nil
}
