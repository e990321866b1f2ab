package booking

// Pricing is the nightly/total breakdown stored on the booking at creation.
// The total is what a full refund pays back.
type Pricing struct {
	perNight Money
	nights   int
	total    Money
}

// CalculatePricing derives the stored breakdown from the listing's nightly
// rate and the stay length.
func CalculatePricing(perNightCents int64, stay StayRange) Pricing {
	nights := stay.Nights()
	return Pricing{
		perNight: NewMoney(perNightCents),
		nights:   nights,
		total:    NewMoney(perNightCents * int64(nights)),
	}
}

func ReconstructPricing(perNightCents int64, nights int, totalCents int64) Pricing {
	return Pricing{
		perNight: NewMoney(perNightCents),
		nights:   nights,
		total:    NewMoney(totalCents),
	}
}

func (p Pricing) PerNight() Money { return p.perNight }
func (p Pricing) Nights() int     { return p.nights }
func (p Pricing) Total() Money    { return p.total }
