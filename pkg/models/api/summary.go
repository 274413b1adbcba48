package api

type Source struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Observation struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Delta struct {
	Sector  string      `json:"sector"`
	New     Observation `json:"new"`
	Old     Observation `json:"old"`
	DeltaPP float64     `json:"delta_pp"`
}

type SeasonMean struct {
	Season string  `json:"season"`
	Mean   float64 `json:"mean"`
}

type LongView struct {
	Name       string       `json:"name"`
	Current    float64      `json:"current"`
	DeltaMonth float64      `json:"delta_month_pp"`
	Seasonal   []SeasonMean `json:"seasonal"`
}

type Mover struct {
	Week     Delta    `json:"week"`
	LongView LongView `json:"long_view"`
}

type Breadth struct {
	Pct             float64 `json:"pct"`
	SectorsCompared int     `json:"sectors_compared"`
}

type Summary struct {
	Source   string  `json:"source,omitempty"`
	Anchor   string  `json:"anchor"`
	National Mover   `json:"national"`
	Breadth  Breadth `json:"breadth"`
	Leader   Mover   `json:"leader"`
	Laggard  Mover   `json:"laggard"`
}

type Error struct {
	Error string `json:"error"`
}
