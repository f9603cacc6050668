// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// DeveloperYearSummary is one year of a developer's catalog.
type DeveloperYearSummary struct {
	Year        int    `json:"Año"`
	Items       int    `json:"Cantidad de Items"`
	FreeContent string `json:"Contenido Free"`
}

// UserProfile summarizes a user's spend and review behavior.
type UserProfile struct {
	User               string `json:"Usuario"`
	MoneySpent         string `json:"Dinero gastado"`
	RecommendationRate string `json:"% de recomendación"`
	ItemCount          int64  `json:"Cantidad de items"`
}

// YearHours is total playtime for games released in Year.
type YearHours struct {
	Year  int   `json:"Año"`
	Hours int64 `json:"Horas"`
}

// GenreTopUser is the result of the top-user-by-genre routine. When Found is
// false it encodes as {"Mensaje": "..."}.
type GenreTopUser struct {
	Genre string
	Found bool
	User  string
	Hours []YearHours
}

// NoDataMessage is the text returned when a genre has no playtime.
func (g GenreTopUser) NoDataMessage() string {
	return fmt.Sprintf("No hay datos para el género '%s'.", g.Genre)
}

// TopUserKey is the dynamic key naming the genre.
func (g GenreTopUser) TopUserKey() string {
	return "Usuario con más horas jugadas para " + g.Genre
}

//nolint:gocritic // value receiver so both T and *T marshal
func (g GenreTopUser) MarshalJSON() ([]byte, error) {
	var b orderedObject
	if !g.Found {
		b.add("Mensaje", g.NoDataMessage())
		return b.bytes()
	}
	hours := g.Hours
	if hours == nil {
		hours = []YearHours{}
	}
	b.add(g.TopUserKey(), g.User)
	b.add("Horas jugadas", hours)
	return b.bytes()
}

// DeveloperRanking lists developers best first. It encodes as
// {"Puesto 1": dev, "Puesto 2": dev, ...}; an empty ranking is {}.
type DeveloperRanking []string

func (r DeveloperRanking) MarshalJSON() ([]byte, error) {
	var b orderedObject
	for i, dev := range r {
		b.add(PositionKey(i+1), dev)
	}
	return b.bytes()
}

// PositionKey returns "Puesto n".
func PositionKey(n int) string {
	return fmt.Sprintf("Puesto %d", n)
}

// DeveloperSentiment counts negative and positive reviews for a developer.
// It encodes as {"<developer>": [{"Negativas": n}, {"Positivas": m}]}.
type DeveloperSentiment struct {
	Developer string
	Negative  int
	Positive  int
}

//nolint:gocritic // value receiver so both T and *T marshal
func (d DeveloperSentiment) MarshalJSON() ([]byte, error) {
	var b orderedObject
	b.add(d.Developer, []map[string]int{
		{"Negativas": d.Negative},
		{"Positivas": d.Positive},
	})
	return b.bytes()
}

// orderedObject writes a JSON object whose keys keep insertion order. Go maps
// would sort them, and several responses have dynamic keys.
type orderedObject struct {
	buf bytes.Buffer
	n   int
	err error
}

func (o *orderedObject) add(key string, value interface{}) {
	if o.err != nil {
		return
	}
	k, err := json.Marshal(key)
	if err != nil {
		o.err = err
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = err
		return
	}
	if o.n == 0 {
		o.buf.WriteByte('{')
	} else {
		o.buf.WriteByte(',')
	}
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(v)
	o.n++
}

func (o *orderedObject) bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	if o.n == 0 {
		return []byte("{}"), nil
	}
	o.buf.WriteByte('}')
	return o.buf.Bytes(), nil
}
