// Package kml exports a solved tour as a KML document that Google Earth and
// similar viewers can open.
//
// The document holds one Folder with a "TOUR" placemark drawing the closed
// route as a LineString, followed by one point placemark per input stop named
// with its 1-based input index.
package kml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeopt/geo"
)

// Namespace is the KML 2.2 namespace written on the root element.
const Namespace = "http://www.opengis.net/kml/2.2"

// TourID is the id attribute of the route placemark.
const TourID = "TOUR"

// ErrBadTour indicates a tour index outside the point list.
var ErrBadTour = errors.New("kml: tour index out of range")

type document struct {
	XMLName xml.Name `xml:"kml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Folder  folder   `xml:"Folder"`
}

type folder struct {
	Placemarks []placemark `xml:"Placemark"`
}

type placemark struct {
	ID         string      `xml:"id,attr,omitempty"`
	Name       string      `xml:"name,omitempty"`
	Style      *style      `xml:"Style,omitempty"`
	LineString *coordsNode `xml:"LineString,omitempty"`
	Point      *coordsNode `xml:"Point,omitempty"`
}

type style struct {
	LineWidth string `xml:"LineStyle>width"`
}

type coordsNode struct {
	Coordinates string `xml:"coordinates"`
}

// coord renders p in KML order: longitude first.
func coord(p geo.Point) string {
	return strconv.FormatFloat(p.Lon, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}

// Write encodes pts and the closed route through them in visiting order path.
func Write(w io.Writer, pts []geo.Point, path []int) error {
	var line strings.Builder
	line.WriteByte('\n')
	for _, v := range path {
		if v < 0 || v >= len(pts) {
			return fmt.Errorf("%w: %d (have %d points)", ErrBadTour, v, len(pts))
		}
		line.WriteString(coord(pts[v]))
		line.WriteByte('\n')
	}
	if len(path) > 0 {
		line.WriteString(coord(pts[path[0]]))
		line.WriteByte('\n')
	}

	doc := document{Xmlns: Namespace}
	doc.Folder.Placemarks = make([]placemark, 0, len(pts)+1)
	doc.Folder.Placemarks = append(doc.Folder.Placemarks, placemark{
		ID:         TourID,
		Style:      &style{LineWidth: "3.0"},
		LineString: &coordsNode{Coordinates: line.String()},
	})
	for i, p := range pts {
		doc.Folder.Placemarks = append(doc.Folder.Placemarks, placemark{
			Name:  strconv.Itoa(i + 1),
			Point: &coordsNode{Coordinates: coord(p)},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("kml: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("kml: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("kml: write: %w", err)
	}

	return nil
}

// OutputPath returns input with its extension replaced by ".kml".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".kml"
}

// WriteFile creates (or truncates) path and writes the document to it.
func WriteFile(path string, pts []geo.Point, tour []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kml: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("kml: close output: %w", cerr)
		}
	}()

	return Write(f, pts, tour)
}
