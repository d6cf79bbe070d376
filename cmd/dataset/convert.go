package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"ozicme/internal/domain/entity"
	"ozicme/internal/infra/dataset"

	"github.com/pkg/errors"
)

// Spreadsheet columns consulted beyond the primary header set.
var (
	convertNameColumns  = []string{"공개표시명", "상호명", "네이버검색어"}
	convertPlaceColumns = []string{"naver_place_url", "네이버플레이스", "네이버플레이스링크", "네이버 플레이스"}
	convertImageColumns = []string{"image_url", "이미지", "이미지URL", "이미지 링크"}
)

// runConvert reads a raw CSV export and writes the normalized dataset
// JSON consumed by the server and the static client.
func runConvert(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to open input file")
	}
	defer func() { _ = f.Close() }()

	raws, err := dataset.DecodeCSV(f)
	if err != nil {
		return errors.Wrap(err, "failed to decode csv")
	}

	restaurants := make([]entity.Restaurant, 0, len(raws))
	for _, raw := range raws {
		rec, ok := convertRow(raw)
		if !ok {
			continue
		}
		restaurants = append(restaurants, rec)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	data, err := json.MarshalIndent(restaurants, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal dataset")
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write output file")
	}

	fmt.Printf("Converted %d restaurants -> %s\n", len(restaurants), outputPath)

	return nil
}

// convertRow maps one spreadsheet row to a restaurant. Rows without any
// usable name are dropped.
func convertRow(raw dataset.RawRecord) (entity.Restaurant, bool) {
	name := firstColumn(raw, convertNameColumns)
	if name == "" {
		return entity.Restaurant{}, false
	}

	region := entity.Region{
		Sido:         column(raw, "지역_시도"),
		Sigungu:      column(raw, "지역_시군구"),
		Eupmyeondong: column(raw, "지역_읍면동"),
	}

	menus := uniqueStrings(dataset.SplitList(column(raw, "주요리_대표")))

	tagRaw := column(raw, "검색태그")
	if tagRaw == "" {
		tagRaw = column(raw, "검색키워드")
	}
	tags := uniqueStrings(dataset.SplitList(tagRaw))

	mapLink := column(raw, "네이버지도검색링크")
	if mapLink == "" {
		query := column(raw, "네이버검색어")
		if query == "" {
			query = strings.TrimSpace(name + " " + region.Sigungu)
		}
		mapLink = buildNaverMapLink(query)
	}

	reservationURL, inferredPlaceURL := dataset.InferReservationLinks(column(raw, "네이버예약/플레이스검색링크"))
	placeURL := firstColumn(raw, convertPlaceColumns)
	if placeURL == "" {
		placeURL = inferredPlaceURL
	}

	imageURL := firstColumn(raw, convertImageColumns)
	var images []string
	if imageURL != "" {
		images = []string{imageURL}
	}

	return entity.Restaurant{
		Name:                name,
		Region:              region,
		Category:            column(raw, "식당유형_대"),
		CategoryDetail:      column(raw, "식당유형_세부"),
		SignatureMenus:      menus,
		SearchTags:          tags,
		Address:             column(raw, "대표주소"),
		NaverReservationURL: reservationURL,
		NaverPlaceURL:       placeURL,
		NaverMapURL:         mapLink,
		ImageURL:            imageURL,
		Thumbnail:           imageURL,
		Images:              images,
		VerifiedBadge:       true,
	}, true
}

func buildNaverMapLink(query string) string {
	return "https://map.naver.com/v5/search/" + url.PathEscape(query)
}

func column(raw dataset.RawRecord, key string) string {
	value, _ := raw[key].(string)

	return strings.TrimSpace(value)
}

func firstColumn(raw dataset.RawRecord, keys []string) string {
	for _, key := range keys {
		if value := column(raw, key); value != "" {
			return value
		}
	}

	return ""
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}
