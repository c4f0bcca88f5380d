package posts

import "fmt"

// ListingType selects which communities a listing draws from
type ListingType string

const (
	ListingAll        ListingType = "All"
	ListingSubscribed ListingType = "Subscribed"
	ListingCommunity  ListingType = "Community"
)

// SortType orders a listing
type SortType string

const (
	SortHot      SortType = "Hot"
	SortNew      SortType = "New"
	SortTopDay   SortType = "TopDay"
	SortTopWeek  SortType = "TopWeek"
	SortTopMonth SortType = "TopMonth"
	SortTopYear  SortType = "TopYear"
	SortTopAll   SortType = "TopAll"
)

var listingTypes = map[string]ListingType{
	string(ListingAll):        ListingAll,
	string(ListingSubscribed): ListingSubscribed,
	string(ListingCommunity):  ListingCommunity,
}

var sortTypes = map[string]SortType{
	string(SortHot):      SortHot,
	string(SortNew):      SortNew,
	string(SortTopDay):   SortTopDay,
	string(SortTopWeek):  SortTopWeek,
	string(SortTopMonth): SortTopMonth,
	string(SortTopYear):  SortTopYear,
	string(SortTopAll):   SortTopAll,
}

// ParseListingType parses an exact listing type name
func ParseListingType(s string) (ListingType, error) {
	if t, ok := listingTypes[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown listing type %q", ErrBadRequest, s)
}

// ParseSortType parses an exact sort name
func ParseSortType(s string) (SortType, error) {
	if t, ok := sortTypes[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown sort %q", ErrBadRequest, s)
}

// IsTop reports whether the sort ranks by score within a time window
func (s SortType) IsTop() bool {
	switch s {
	case SortTopDay, SortTopWeek, SortTopMonth, SortTopYear, SortTopAll:
		return true
	}
	return false
}
