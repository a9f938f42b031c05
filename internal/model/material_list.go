package model

// MaterialItem is one required supply inside a MaterialList.
type MaterialItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

// Teacher is the owner summary embedded in material list responses.
type Teacher struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MaterialList is a teacher-authored list of required items for a discipline.
type MaterialList struct {
	ID         int64          `json:"id"`
	Semester   int            `json:"semester"`
	Discipline string         `json:"discipline"`
	TeacherID  int64          `json:"teacherId,omitempty"`
	Teacher    *Teacher       `json:"teacher,omitempty"`
	Active     bool           `json:"active"`
	Items      []MaterialItem `json:"items"`
}

// OwnerID returns the owning teacher id from whichever field the backend filled.
func (l MaterialList) OwnerID() int64 {
	if l.Teacher != nil && l.Teacher.ID != 0 {
		return l.Teacher.ID
	}
	return l.TeacherID
}

// OwnerName returns the owning teacher name, empty when the backend omitted it.
func (l MaterialList) OwnerName() string {
	if l.Teacher == nil {
		return ""
	}
	return l.Teacher.Name
}

// MaterialListInput is the payload accepted by POST and PUT /material-lists.
type MaterialListInput struct {
	Semester   int            `json:"semester"`
	Discipline string         `json:"discipline"`
	TeacherID  int64          `json:"teacherId"`
	Active     bool           `json:"active"`
	Items      []MaterialItem `json:"items"`
}

// AddItem appends an empty row.
func (in *MaterialListInput) AddItem() {
	in.Items = append(in.Items, MaterialItem{})
}

// RemoveItem drops the row at index i; out of range indexes are ignored.
func (in *MaterialListInput) RemoveItem(i int) {
	if i < 0 || i >= len(in.Items) {
		return
	}
	in.Items = append(in.Items[:i:i], in.Items[i+1:]...)
}
