package types

import "strings"

// Known KET (status) tags as they appear in the source data. The set is not
// closed: rows imported from the field spreadsheets occasionally carry
// variants, which fall back to StatusBadgeNeutral at display time. Storage
// and grouping always use the raw tag string.
const (
	KetLunas      = "LUNAS"
	KetBayarLunas = "BYR/LUNAS"
	KetCabut      = "CABUT"
	KetPermohonan = "PERMOHONAN"
	KetBelumLunas = "BELUM LUNAS"
	KetProses     = "PROSES"
)

// KnownKets lists the recognized status tags, in the order the filter UI
// presents them.
var KnownKets = []string{
	KetLunas,
	KetBayarLunas,
	KetCabut,
	KetPermohonan,
	KetBelumLunas,
	KetProses,
}

// StatusBadge is the display-time classification of a KET tag.
type StatusBadge string

const (
	StatusBadgeSettled StatusBadge = "settled" // paid up
	StatusBadgeRevoked StatusBadge = "revoked" // connection pulled
	StatusBadgeRequest StatusBadge = "request" // customer application pending
	StatusBadgePending StatusBadge = "pending" // unpaid or in progress
	StatusBadgeNeutral StatusBadge = "neutral" // unrecognized tag
)

// BadgeForKet maps a raw KET tag to its display badge. Matching is by
// substring on the upper-cased tag, mirroring how the field data varies
// ("LUNAS", "BYR/LUNAS", "SDH LUNAS" all read as settled).
func BadgeForKet(ket string) StatusBadge {
	tag := strings.ToUpper(strings.TrimSpace(ket))
	switch {
	case strings.Contains(tag, "LUNAS") && !strings.Contains(tag, "BELUM"):
		return StatusBadgeSettled
	case strings.Contains(tag, "BYR"):
		return StatusBadgeSettled
	case strings.Contains(tag, "CABUT"):
		return StatusBadgeRevoked
	case strings.Contains(tag, "PERMOHONAN"):
		return StatusBadgeRequest
	case strings.Contains(tag, "BELUM"), strings.Contains(tag, "PROSES"):
		return StatusBadgePending
	default:
		return StatusBadgeNeutral
	}
}
