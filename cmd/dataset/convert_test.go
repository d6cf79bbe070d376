package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ozicme/internal/domain/entity"
	"ozicme/internal/infra/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRow_Mapping(t *testing.T) {
	raw := dataset.RawRecord{
		"공개표시명":         "국밥명가",
		"상호명":           "국밥명가 본점",
		"지역_시도":         "서울특별시",
		"지역_시군구":        "강남구",
		"지역_읍면동":        "역삼동",
		"식당유형_대":        "한식",
		"식당유형_세부":       "국밥",
		"주요리_대표":        "돼지국밥/수육/돼지국밥",
		"검색태그":          "해장,노포",
		"대표주소":          "서울특별시 강남구 역삼동 123",
		"네이버예약/플레이스검색링크": "https://booking.naver.com/booking/1",
	}

	rec, ok := convertRow(raw)
	require.True(t, ok)

	assert.Equal(t, "국밥명가", rec.Name)
	assert.Equal(t, "한식", rec.Category)
	assert.Equal(t, "국밥", rec.CategoryDetail)
	// Duplicate menu entries collapse.
	assert.Equal(t, []string{"돼지국밥", "수육"}, rec.SignatureMenus)
	assert.Equal(t, []string{"해장", "노포"}, rec.SearchTags)
	assert.Equal(t, "https://booking.naver.com/booking/1", rec.NaverReservationURL)
	assert.Empty(t, rec.NaverPlaceURL)
	assert.True(t, rec.VerifiedBadge)
	assert.Empty(t, rec.SearchText)
}

func TestConvertRow_NameFallbackChain(t *testing.T) {
	rec, ok := convertRow(dataset.RawRecord{"상호명": "원래이름"})
	require.True(t, ok)
	assert.Equal(t, "원래이름", rec.Name)

	rec, ok = convertRow(dataset.RawRecord{"네이버검색어": "검색어이름"})
	require.True(t, ok)
	assert.Equal(t, "검색어이름", rec.Name)

	_, ok = convertRow(dataset.RawRecord{"지역_시도": "서울특별시"})
	assert.False(t, ok)
}

func TestConvertRow_SynthesizedMapLink(t *testing.T) {
	rec, ok := convertRow(dataset.RawRecord{
		"공개표시명":  "국수나무",
		"지역_시군구": "마포구",
	})
	require.True(t, ok)
	assert.Equal(t, "https://map.naver.com/v5/search/"+"%EA%B5%AD%EC%88%98%EB%82%98%EB%AC%B4%20%EB%A7%88%ED%8F%AC%EA%B5%AC", rec.NaverMapURL)

	// The explicit search term column outranks name+sigungu.
	rec, ok = convertRow(dataset.RawRecord{
		"공개표시명":  "국수나무",
		"네이버검색어": "국수나무 합정",
	})
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(rec.NaverMapURL, "%EA%B5%AD%EC%88%98%EB%82%98%EB%AC%B4%20%ED%95%A9%EC%A0%95"))

	// A pasted map link is kept verbatim.
	rec, ok = convertRow(dataset.RawRecord{
		"공개표시명":     "국수나무",
		"네이버지도검색링크": "https://map.naver.com/p/search/abc",
	})
	require.True(t, ok)
	assert.Equal(t, "https://map.naver.com/p/search/abc", rec.NaverMapURL)
}

func TestConvertRow_PlaceColumnWins(t *testing.T) {
	rec, ok := convertRow(dataset.RawRecord{
		"공개표시명":         "플레이스집",
		"naver_place_url": "https://m.place.naver.com/restaurant/1",
		"네이버예약/플레이스검색링크": "https://m.place.naver.com/restaurant/2",
	})
	require.True(t, ok)
	assert.Equal(t, "https://m.place.naver.com/restaurant/1", rec.NaverPlaceURL)
}

func TestRunConvert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "stores.csv")
	output := filepath.Join(dir, "out", "stores.json")

	csv := strings.Join([]string{
		"공개표시명,지역_시도,지역_시군구,주요리_대표",
		"국수나무,서울특별시,마포구,잔치국수/비빔국수",
		",,,",
		"밀밭칼국수,경기도,수원시,칼국수",
	}, "\n")
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	require.NoError(t, runConvert(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var records []entity.Restaurant
	require.NoError(t, json.Unmarshal(data, &records))

	// The nameless row is dropped.
	require.Len(t, records, 2)
	assert.Equal(t, "국수나무", records[0].Name)
	assert.True(t, records[0].VerifiedBadge)
	assert.Empty(t, records[0].SearchText)
}
