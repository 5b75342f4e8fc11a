package handler

import "net/http"

// HTMX header constants
const (
	// Request headers
	HXRequest     = "HX-Request"
	HXBoosted     = "HX-Boosted"
	HXTarget      = "HX-Target"
	HXTrigger     = "HX-Trigger"
	HXTriggerName = "HX-Trigger-Name"
	HXCurrentURL  = "HX-Current-URL"

	// Response headers
	HXReswap   = "HX-Reswap"
	HXRetarget = "HX-Retarget"
)

// Swap styles accepted by HX-Reswap.
const (
	SwapInnerHTML = "innerHTML"
	SwapOuterHTML = "outerHTML"
	SwapBeforeEnd = "beforeend"
	SwapNone      = "none"
)

// IsHTMX checks if the request is an HTMX request.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// IsHTMXBoosted checks if the request is an HTMX boosted request.
func IsHTMXBoosted(r *http.Request) bool {
	return r.Header.Get(HXBoosted) == "true"
}

// HTMXTarget returns the id of the target element if it exists.
func HTMXTarget(r *http.Request) string {
	return r.Header.Get(HXTarget)
}

// HTMXTriggerName returns the name of the triggered element if it exists.
func HTMXTriggerName(r *http.Request) string {
	return r.Header.Get(HXTriggerName)
}
