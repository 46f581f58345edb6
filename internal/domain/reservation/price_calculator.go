package reservation

type PriceCalculator interface {
	Price(hourly Money, start, end TimeOfDay) Money
}

// HourlyPriceCalculator prorates the hourly rate by the booked minutes.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) Price(hourly Money, start, end TimeOfDay) Money {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return NewMoney(0)
	}
	return hourly.ForDuration(end.Sub(start))
}
