package util

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

var easings = map[string]func(float64) float64{
	"linear":      ease.Linear,
	"inQuad":      ease.InQuad,
	"outQuad":     ease.OutQuad,
	"inOutQuad":   ease.InOutQuad,
	"inCubic":     ease.InCubic,
	"outCubic":    ease.OutCubic,
	"inOutCubic":  ease.InOutCubic,
	"inSine":      ease.InSine,
	"outSine":     ease.OutSine,
	"inOutSine":   ease.InOutSine,
	"outBounce":   ease.OutBounce,
	"inOutBounce": ease.InOutBounce,
}

// Easing looks up an easing curve by its config name. An empty name is linear.
func Easing(name string) (func(float64) float64, error) {
	if name == "" {
		return ease.Linear, nil
	}
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q, expected one of %v", name, EasingNames())
	}
	return f, nil
}

// EasingNames lists the accepted easing names in order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
