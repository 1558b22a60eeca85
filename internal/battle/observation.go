package battle

// Own returns this Observation's own-side Pokémon views, team-index order.
func (o Observation) Own() []MonView {
	var out []MonView
	for _, m := range o.Mons {
		if m.Side == o.Side {
			out = append(out, m)
		}
	}
	return out
}

// Opponent returns this Observation's opposing-side Pokémon views,
// team-index order (bench entries redacted per §6 unless full information
// is enabled).
func (o Observation) Opponent() []MonView {
	var out []MonView
	for _, m := range o.Mons {
		if m.Side != o.Side {
			out = append(out, m)
		}
	}
	return out
}

// ActiveOwn returns the view for this side's Pokémon currently in the
// given active slot index, or the zero MonView if that slot is empty.
func (o Observation) ActiveOwn(slot int) (MonView, bool) {
	for _, m := range o.Own() {
		if m.Active && m.ActiveSlot == slot {
			return m, true
		}
	}
	return MonView{}, false
}
