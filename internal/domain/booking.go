package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const bookingRefPrefix = "ref_"

type Booking struct {
	Ref       string    `json:"ref"`
	BundleID  string    `json:"bundleId"`
	CreatedAt time.Time `json:"createdAt"`
	Redirect  string    `json:"redirect"`
}

// NewBooking builds the reference ref_<unix-millis>_<bundleID>.
func NewBooking(bundleID string, at time.Time) Booking {
	ref := fmt.Sprintf("%s%d_%s", bookingRefPrefix, at.UnixMilli(), bundleID)
	return Booking{
		Ref:       ref,
		BundleID:  bundleID,
		CreatedAt: at.UTC(),
		Redirect:  "/checkout/success/?ref=" + url.QueryEscape(ref),
	}
}

// ParseBookingRef splits a reference back into its timestamp and bundle id.
// Only the first separator after the timestamp counts, so ids may contain underscores.
func ParseBookingRef(ref string) (bundleID string, at time.Time, err error) {
	rest, ok := strings.CutPrefix(ref, bookingRefPrefix)
	if !ok {
		return "", time.Time{}, fmt.Errorf("%w: booking reference must start with %q", ErrValidation, bookingRefPrefix)
	}
	ts, id, ok := strings.Cut(rest, "_")
	if !ok || id == "" {
		return "", time.Time{}, fmt.Errorf("%w: booking reference has no bundle id", ErrValidation)
	}
	ms, perr := strconv.ParseInt(ts, 10, 64)
	if perr != nil {
		return "", time.Time{}, fmt.Errorf("%w: booking reference timestamp %q", ErrValidation, ts)
	}
	return id, time.UnixMilli(ms).UTC(), nil
}

// SharePath is the front-end path a bundle is shared under.
func SharePath(bundleID string) string {
	return "/share/" + url.PathEscape(bundleID) + "/"
}
