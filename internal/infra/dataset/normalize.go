package dataset

import (
	"fmt"
	"strings"

	"ozicme/internal/domain/entity"
	"ozicme/internal/errors"
)

// listDelimiters split delimited menu/tag cells, e.g. "국밥/수육,막걸리+전".
const listDelimiters = "/,+"

// bookingHost marks a Naver link as booking-capable rather than a plain
// place page.
const bookingHost = "booking.naver.com"

// Normalize maps one arbitrarily-keyed raw record to the canonical
// restaurant shape. position is the 0-based index of the record in its
// dataset and seeds the synthesized id when the source carries none.
//
// Normalize reports a fault instead of panicking; NormalizeAll substitutes
// the positional placeholder on fault so one malformed row never aborts a
// dataset load.
func Normalize(raw RawRecord, position int) (rec entity.Restaurant, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("normalize record %d: %v", position, r)
		}
	}()

	if raw == nil {
		return entity.Restaurant{}, errors.Errorf("record %d is not an object", position)
	}

	rec = entity.Restaurant{
		ID:             pickString(raw, idCandidates),
		Name:           pickString(raw, nameCandidates),
		Category:       pickString(raw, categoryCandidates),
		CategoryDetail: pickString(raw, categoryDetailCandidates),
		Region:         normalizeRegion(raw),
		SignatureMenus: pickList(raw, menuCandidates),
		SearchTags:     pickList(raw, tagCandidates),
		VerifiedBadge:  asBool(raw["verifiedBadge"]) || asString(raw["배지"]) == "오직미클럽",
		VerifiedMonth:  pickString(raw, verifiedMonthCandidates),
		PriceRange:     pickString(raw, priceRangeCandidates),
		Phone:          pickString(raw, phoneCandidates),
	}

	if rec.ID == "" {
		rec.ID = SynthesizeID(position)
	}

	rec.Address = pickString(raw, addressCandidates)
	if rec.Address == "" {
		rec.Address = strings.Join(rec.Region.Parts(), " ")
	}

	normalizeLinks(raw, &rec)
	normalizeImages(raw, &rec)

	rec.SearchText = BuildSearchText(rec)

	return rec, nil
}

// NormalizeAll normalizes a full raw dataset, substituting a positional
// placeholder record for any row that faults.
func NormalizeAll(raws []RawRecord) []entity.Restaurant {
	records := make([]entity.Restaurant, 0, len(raws))
	for position, raw := range raws {
		rec, err := Normalize(raw, position)
		if err != nil {
			rec = Placeholder(position)
		}
		records = append(records, rec)
	}

	return records
}

// SynthesizeID builds a positional fallback id for a record with no source
// id. Positional ids are not stable under dataset re-ordering; upstream is
// expected to provide real ids for records that need durable links.
func SynthesizeID(position int) string {
	return fmt.Sprintf("store-%d", position+1)
}

// Placeholder is the minimal record substituted for a row that failed
// normalization.
func Placeholder(position int) entity.Restaurant {
	return entity.Restaurant{
		ID:             SynthesizeID(position),
		SignatureMenus: []string{},
		SearchTags:     []string{},
		Images:         []string{},
	}
}

// SplitList splits a delimited cell on "/", "," or "+", trimming entries and
// dropping empties. Duplicates within a record are preserved.
func SplitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(listDelimiters, r)
	})

	items := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}

// InferReservationLinks classifies a single raw link column into a booking
// URL or a place page URL. Exactly one of the results is populated for a
// non-empty input, never both.
func InferReservationLinks(link string) (reservationURL, placeURL string) {
	trimmed := strings.TrimSpace(link)
	if trimmed == "" {
		return "", ""
	}
	if strings.Contains(strings.ToLower(trimmed), bookingHost) {
		return trimmed, ""
	}

	return "", trimmed
}

func normalizeRegion(raw RawRecord) entity.Region {
	if nested, ok := raw["region"].(map[string]any); ok {
		return entity.Region{
			Sido:         asString(nested["sido"]),
			Sigungu:      asString(nested["sigungu"]),
			Eupmyeondong: asString(nested["eupmyeondong"]),
		}
	}

	return entity.Region{
		Sido:         pickString(raw, sidoCandidates),
		Sigungu:      pickString(raw, sigunguCandidates),
		Eupmyeondong: pickString(raw, eupmyeondongCandidates),
	}
}

// pickList resolves a list-valued field: a list-shaped value is used
// verbatim, a delimited string is split.
func pickList(raw RawRecord, keys []string) []string {
	switch value := pickValue(raw, keys).(type) {
	case nil:
		return []string{}
	case []any:
		items := make([]string, 0, len(value))
		for _, entry := range value {
			if s := asString(entry); s != "" {
				items = append(items, s)
			}
		}

		return items
	case []string:
		items := make([]string, 0, len(value))
		for _, entry := range value {
			if entry != "" {
				items = append(items, entry)
			}
		}

		return items
	case string:
		return SplitList(value)
	default:
		return []string{}
	}
}

func normalizeLinks(raw RawRecord, rec *entity.Restaurant) {
	rec.NaverReservationURL = pickString(raw, reservationCandidates)
	rec.NaverPlaceURL = pickString(raw, placeCandidates)
	rec.NaverMapURL = pickString(raw, mapCandidates)

	// Older sheets carry a single combined column that is either a booking
	// link or a place page.
	if rec.NaverReservationURL == "" && rec.NaverPlaceURL == "" {
		if combined := pickString(raw, combinedLinkCandidates); combined != "" {
			rec.NaverReservationURL, rec.NaverPlaceURL = InferReservationLinks(combined)
		}
	}
}

func normalizeImages(raw RawRecord, rec *entity.Restaurant) {
	rec.ImageURL = ResolveImageURL(pickValue(raw, imageCandidates))
	rec.Thumbnail = rec.ImageURL

	images := []string{}
	if list, ok := raw["images"].([]any); ok {
		for _, entry := range list {
			if resolved := ResolveImageURL(entry); resolved != "" {
				images = append(images, resolved)
			}
		}
	}
	if len(images) == 0 && rec.ImageURL != "" {
		images = append(images, rec.ImageURL)
	}
	rec.Images = images
}
