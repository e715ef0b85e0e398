package venue

import "errors"

var ErrInvalidSportType = errors.New("invalid sport type")

// SportType values match what the venues service stores verbatim.
type SportType string

const (
	SportSoccer     SportType = "Fútbol"
	SportTennis     SportType = "Tenis"
	SportBasketball SportType = "Básquet"
	SportVolleyball SportType = "Vóley"
)

func (t SportType) String() string {
	return string(t)
}

func (t SportType) IsValid() bool {
	switch t {
	case SportSoccer, SportTennis, SportBasketball, SportVolleyball:
		return true
	default:
		return false
	}
}

func NewSportType(s string) (SportType, error) {
	t := SportType(s)
	if !t.IsValid() {
		return "", ErrInvalidSportType
	}
	return t, nil
}

func AllSportTypes() []SportType {
	return []SportType{SportSoccer, SportTennis, SportBasketball, SportVolleyball}
}
