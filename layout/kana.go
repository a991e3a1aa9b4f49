package layout

var kanaFamilies = [...]Family{
	KanaNicola:   {Base: &nicola, Left: &nicolaLeft, Right: &nicolaRight},
	KanaNicolaF:  {Base: &nicolaFKana, Left: &nicolaFLeft, Right: &nicolaFRight, Alt: &nicolaFHandaku},
	KanaMtype:    {Base: &mtype, Left: &mtypeLeft, Right: &mtypeRight},
	KanaTron:     {Base: &tron, Left: &tronLeft, Right: &tronRight},
	KanaStickney: {Base: &stickney, Left: &stickneyShift, Right: &stickneyShift},
}

// Kana returns the tables for a kana mode. ok is false for KanaRomaji and
// unknown modes, which resolve through the base layout instead.
func Kana(m KanaMode) (f Family, ok bool) {
	if m == KanaRomaji || !m.Valid() {
		return Family{}, false
	}
	return kanaFamilies[m], true
}
