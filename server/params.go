package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/juststreamit/pkg/viewport"
)

// ParseWidthParam extracts the viewport width the client lays the lists out for
func ParseWidthParam(r *http.Request) (int, error) {
	widthStr := r.URL.Query().Get("width")
	if widthStr == "" {
		return viewport.DefaultWidth, nil
	}

	width, err := strconv.Atoi(widthStr)
	if err != nil || width < 1 {
		return 0, fmt.Errorf("invalid width parameter: must be positive integer")
	}
	return width, nil
}
