package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/leaptable/pkg/grid"
)

// ParseWidth parses a width declaration: a preset letter (S, M, L, XL), an
// exact pixel size with a px suffix ("120px"), or a bare number.
func ParseWidth(s string) (grid.WidthClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "medium":
		return grid.WidthM, nil
	case "s", "small":
		return grid.WidthS, nil
	case "l", "large":
		return grid.WidthL, nil
	case "xl":
		return grid.WidthXL, nil
	}

	raw := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "px")
	px, err := strconv.Atoi(raw)
	if err != nil || px <= 0 {
		return 0, fmt.Errorf("invalid width %q (want S, M, L, XL or a pixel size)", s)
	}
	return grid.WidthPixels(px), nil
}

// ParseAlignment parses a column alignment declaration.
func ParseAlignment(s string) (grid.Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return grid.AlignLeft, nil
	case "center", "centre":
		return grid.AlignCenter, nil
	case "right":
		return grid.AlignRight, nil
	default:
		return 0, fmt.Errorf("invalid alignment %q (want left, center or right)", s)
	}
}

// ParseMode parses a selection mode declaration.
func ParseMode(s string) (grid.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return grid.ModeNone, nil
	case "", "single":
		return grid.ModeSingleNative, nil
	case "multi", "multiple":
		return grid.ModeMultiNative, nil
	case "checkbox":
		return grid.ModeCheckbox, nil
	default:
		return 0, fmt.Errorf("invalid selection mode %q (want none, single, multi or checkbox)", s)
	}
}

// decodeHook converts the string forms of width, alignment and selection
// mode while unmarshaling. Integer widths pass through mapstructure's own
// weak typing.
func decodeHook() mapstructure.DecodeHookFunc {
	widthType := reflect.TypeOf(grid.WidthClass(0))
	alignType := reflect.TypeOf(grid.Alignment(0))
	modeType := reflect.TypeOf(grid.Mode(0))

	return mapstructure.DecodeHookFuncType(func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		switch to {
		case widthType:
			return ParseWidth(s)
		case alignType:
			return ParseAlignment(s)
		case modeType:
			return ParseMode(s)
		default:
			return data, nil
		}
	})
}
