// Package dataset loads raw restaurant datasets (JSON or CSV) and normalizes
// them into canonical entity.Restaurant records. The upstream data has gone
// through several schema revisions with English camelCase, English
// snake_case, and Korean column names; the normalizer reconciles all of them
// through ordered candidate-key lookup instead of per-source branching.
package dataset

import (
	"fmt"
	"strings"
)

// RawRecord is one untyped row of an upstream dataset. JSON rows carry the
// decoded object; CSV rows carry header→cell strings.
type RawRecord map[string]any

// Ordered candidate raw keys per canonical field. The first candidate with a
// non-empty value wins. Order matters: curated columns (공개표시명) outrank
// raw source columns (상호명).
var (
	idCandidates   = []string{"id", "store_id", "storeId", "slug"}
	nameCandidates = []string{
		"name", "store_name",
		"공개표시명", "상호", "상호명", "식당명", "업체명", "매장명",
	}
	addressCandidates = []string{
		"address", "addr", "address_public", "addressPublic",
		"대표주소", "도로명주소", "주소", "소재지",
	}
	categoryCandidates = []string{
		"category", "type", "식당유형_대", "식당유형",
	}
	categoryDetailCandidates = []string{
		"categoryDetail", "category_detail", "식당유형_세부",
	}
	sidoCandidates         = []string{"sido", "지역_시도", "시도"}
	sigunguCandidates      = []string{"sigungu", "지역_시군구", "시군구"}
	eupmyeondongCandidates = []string{"eupmyeondong", "지역_읍면동", "읍면동"}
	menuCandidates         = []string{
		"signatureMenus", "signature_menus", "mainDishes", "main_dishes",
		"주요리_대표", "대표메뉴",
	}
	tagCandidates = []string{
		"searchTags", "search_tags", "tags", "검색태그", "검색키워드",
	}
	reservationCandidates = []string{
		"naverReservationUrl", "naver_reservation_url", "네이버예약URL",
	}
	placeCandidates = []string{
		"naverPlaceUrl", "naver_place_url", "naverPlace",
		"네이버플레이스", "네이버플레이스링크", "플레이스링크",
	}
	mapCandidates = []string{
		"naverMapUrl", "naver_map_url", "네이버지도검색링크",
	}
	// combinedLinkCandidates hold a single column that may be either a
	// booking link or a place page; see InferReservationLinks.
	combinedLinkCandidates = []string{
		"네이버예약/플레이스검색링크", "naver_link", "링크",
	}
	imageCandidates = []string{
		"imageUrl", "image_url", "image", "thumbnail", "images",
		"대표이미지", "이미지링크", "이미지", "이미지URL",
	}
	verifiedMonthCandidates = []string{"verifiedMonth", "verified_month", "인증월"}
	priceRangeCandidates    = []string{"priceRange", "price_range", "가격대"}
	phoneCandidates         = []string{"phone", "tel", "전화", "전화번호"}
)

// pickString resolves the first candidate key whose value renders to a
// non-empty trimmed string.
func pickString(raw RawRecord, keys []string) string {
	for _, key := range keys {
		if s := asString(raw[key]); s != "" {
			return s
		}
	}

	return ""
}

// pickValue resolves the first candidate key with any non-nil, non-empty
// value, preserving its original shape (for list- or object-valued fields).
func pickValue(raw RawRecord, keys []string) any {
	for _, key := range keys {
		value := raw[key]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if list, ok := value.([]any); ok && len(list) == 0 {
			continue
		}

		return value
	}

	return nil
}

// asString renders a scalar raw value as a trimmed string. Numbers appear in
// id columns of some CSV exports, so they are stringified rather than
// dropped.
func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}

		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "true"
		}

		return "false"
	default:
		return ""
	}
}

// asBool interprets raw boolean-ish values from JSON and CSV sources.
func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "y", "yes":
			return true
		}
	}

	return false
}
