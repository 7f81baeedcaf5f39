// Package view holds pure presentation helpers shared by the admin surfaces.
package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusBadge is a display label with its style class.
type StatusBadge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

const (
	classSuccess = "bg-green-100 text-green-800"
	classWarning = "bg-yellow-100 text-yellow-800"
	classInfo    = "bg-blue-100 text-blue-800"
	classDanger  = "bg-red-100 text-red-800"
	classMuted   = "bg-gray-100 text-gray-800"
	classAccent  = "bg-purple-100 text-purple-800"
)

// badgeClasses covers the values of every status enum in the domain model.
var badgeClasses = map[string]string{
	"active":       classSuccess,
	"delivered":    classSuccess,
	"paid":         classSuccess,
	"approved":     classSuccess,
	"verified":     classSuccess,
	"in_stock":     classSuccess,
	"pending":      classWarning,
	"requested":    classWarning,
	"low_stock":    classWarning,
	"shipped":      classInfo,
	"marked_paid":  classInfo,
	"cancelled":    classDanger,
	"failed":       classDanger,
	"rejected":     classDanger,
	"blocked":      classDanger,
	"out_of_stock": classDanger,
	"disabled":     classDanger,
	"returned":     classAccent,
	"refunded":     classAccent,
}

// Badge maps any status value to its label and class. Unknown values get the
// muted style.
func Badge[S ~string](status S) StatusBadge {
	key := strings.ToLower(strings.TrimSpace(string(status)))
	class, ok := badgeClasses[key]
	if !ok {
		class = classMuted
	}
	return StatusBadge{Label: Label(key), Class: class}
}

// Label turns a snake_case status into words, e.g. "out_of_stock" → "Out Of Stock".
func Label[S ~string](status S) string {
	s := strings.TrimSpace(string(status))
	if s == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
