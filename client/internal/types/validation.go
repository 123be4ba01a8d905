package types

import (
	"strings"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
)

// Service-side limits, enforced locally so bad calls fail before any I/O.
const (
	MaxFdcIDs    = 20
	MaxNutrients = 25
	MaxPageSize  = 200
)

// ------------------------------
// Validation
// ------------------------------

// ValidateFdcID ensures id is a positive FDC identifier.
func ValidateFdcID(id int) error {
	if id <= 0 {
		return fdcerrors.InvalidArgument("fdcId must be positive, got %d", id)
	}
	return nil
}

// ValidateFdcIDs ensures ids holds between 1 and MaxFdcIDs positive ids.
func ValidateFdcIDs(ids []int) error {
	if len(ids) == 0 {
		return fdcerrors.InvalidArgument("at least one fdcId is required")
	}
	if len(ids) > MaxFdcIDs {
		return fdcerrors.InvalidArgument("at most %d fdcIds per call, got %d", MaxFdcIDs, len(ids))
	}
	for _, id := range ids {
		if err := ValidateFdcID(id); err != nil {
			return err
		}
	}
	return nil
}

// ValidateQuery ensures the search terms are not blank.
func ValidateQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return fdcerrors.InvalidArgument("query is required")
	}
	return nil
}

// Validate checks the format and nutrient list.
func (o FoodOptions) Validate() error {
	switch o.Format {
	case "", FormatAbridged, FormatFull:
	default:
		return fdcerrors.InvalidArgument("unknown format %q", o.Format)
	}
	if len(o.Nutrients) > MaxNutrients {
		return fdcerrors.InvalidArgument("at most %d nutrients, got %d", MaxNutrients, len(o.Nutrients))
	}
	for _, n := range o.Nutrients {
		if n <= 0 {
			return fdcerrors.InvalidArgument("nutrient number must be positive, got %d", n)
		}
	}
	return nil
}

// Validate checks paging bounds and enum values.
func (o ListOptions) Validate() error {
	for _, dt := range o.DataTypes {
		switch dt {
		case DataTypeBranded, DataTypeFoundation, DataTypeSurvey, DataTypeSRLegacy, DataTypeExperimental:
		default:
			return fdcerrors.InvalidArgument("unknown dataType %q", dt)
		}
	}
	if o.PageSize < 0 || o.PageSize > MaxPageSize {
		return fdcerrors.InvalidArgument("pageSize must be within 1..%d, got %d", MaxPageSize, o.PageSize)
	}
	if o.PageNumber < 0 {
		return fdcerrors.InvalidArgument("pageNumber must be >= 1, got %d", o.PageNumber)
	}
	switch o.SortBy {
	case "", SortByDataType, SortByDescription, SortByFdcID, SortByPublishedDate:
	default:
		return fdcerrors.InvalidArgument("unknown sortBy %q", o.SortBy)
	}
	switch o.SortOrder {
	case "", SortAsc, SortDesc:
	default:
		return fdcerrors.InvalidArgument("unknown sortOrder %q", o.SortOrder)
	}
	return nil
}

// Validate checks the embedded list options.
func (o SearchOptions) Validate() error { return o.ListOptions.Validate() }
