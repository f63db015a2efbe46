package weather

// Response is the fixed schema returned to API clients.
type Response struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// providerPayload mirrors the OpenWeatherMap current-weather response.
// Pointer fields distinguish a missing key from a zero value: every
// field below is required, and absence is a gateway error rather than
// a silent default.
type providerPayload struct {
	Name *string `json:"name"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// toResponse maps the provider payload onto the service schema,
// reporting the first missing field it encounters.
func (p *providerPayload) toResponse() (*Response, error) {
	switch {
	case p.Name == nil:
		return nil, errMissingField("name")
	case p.Main == nil:
		return nil, errMissingField("main")
	case p.Main.Temp == nil:
		return nil, errMissingField("main.temp")
	case p.Main.FeelsLike == nil:
		return nil, errMissingField("main.feels_like")
	case p.Main.Humidity == nil:
		return nil, errMissingField("main.humidity")
	case len(p.Weather) == 0 || p.Weather[0].Description == nil:
		return nil, errMissingField("weather[0].description")
	case p.Wind == nil || p.Wind.Speed == nil:
		return nil, errMissingField("wind.speed")
	}

	return &Response{
		City:        *p.Name,
		Temperature: *p.Main.Temp,
		FeelsLike:   *p.Main.FeelsLike,
		Description: *p.Weather[0].Description,
		Humidity:    *p.Main.Humidity,
		WindSpeed:   *p.Wind.Speed,
	}, nil
}

// APIError represents an error response from OpenWeatherMap.
type APIError struct {
	Cod     any    `json:"cod"` // API returns cod as int or string depending on context
	Message string `json:"message"`
}
