package ingest

// Column labels are exact string matches against the sheet header row.
// Unrecognized columns are ignored everywhere except the salary sheet,
// where every extra column still counts toward the annual total.
const (
	ColFullName = "الاسم الكامل"
	ColGender   = "الجنس"
	ColLevel    = "المستوى"
	ColGroup    = "الفوج"
	ColTeacher  = "الشيخ/الأستاذة"
	ColNotes    = "ملاحظات"
	ColRole     = "الدور"
	ColPhone    = "رقم الهاتف"
	ColAmount   = "المبلغ"
	ColDate     = "التاريخ"
	ColItem     = "البيان"
	ColType     = "نوع المصروف"
	// The donor and expense sheets label their notes column in the
	// singular.
	ColNote = "ملاحظة"
)
