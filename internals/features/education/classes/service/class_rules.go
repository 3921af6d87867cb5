package service

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/classes/model"
)

const (
	firstRoomNumber = 1
	lastRoomNumber  = 20
)

// AllRoomNumbers returns the fixed set of rooms in the building, "1".."20".
func AllRoomNumbers() []string {
	out := make([]string, 0, lastRoomNumber-firstRoomNumber+1)
	for i := firstRoomNumber; i <= lastRoomNumber; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// SharesStartYear reports whether two class start dates fall in the same
// academic year. The year of the start date is the academic year.
func SharesStartYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// TeacherYearConflict reports whether the teacher already runs another class
// starting in the same year. excludeID skips the class being updated; pass
// uuid.Nil on create.
func TeacherYearConflict(db *gorm.DB, teacherID uuid.UUID, startDate time.Time, excludeID uuid.UUID) (bool, error) {
	return classYearConflict(db, "class_teacher_id = ?", teacherID, startDate, excludeID)
}

// RoomYearConflict reports whether the room already hosts another class
// starting in the same year.
func RoomYearConflict(db *gorm.DB, roomNumber string, startDate time.Time, excludeID uuid.UUID) (bool, error) {
	return classYearConflict(db, "class_room_number = ?", roomNumber, startDate, excludeID)
}

func classYearConflict(db *gorm.DB, cond string, condArg any, startDate time.Time, excludeID uuid.UUID) (bool, error) {
	q := db.Model(&model.ClassModel{}).
		Select("class_id", "class_start_date").
		Where(cond, condArg)
	if excludeID != uuid.Nil {
		q = q.Where("class_id <> ?", excludeID)
	}
	var candidates []model.ClassModel
	if err := q.Find(&candidates).Error; err != nil {
		return false, err
	}
	for i := range candidates {
		if SharesStartYear(candidates[i].ClassStartDate, startDate) {
			return true, nil
		}
	}
	return false, nil
}

// RoomOccupancy maps each room to the class currently holding it, if any. A
// room is occupied while an active class with a future-or-today end date is
// assigned to it.
type RoomOccupancy struct {
	RoomNumber string     `json:"room_number"`
	Available  bool       `json:"available"`
	ClassID    *uuid.UUID `json:"class_id,omitempty"`
	ClassName  *string    `json:"class_name,omitempty"`
}

func ResolveRoomOccupancy(db *gorm.DB, today time.Time) ([]RoomOccupancy, error) {
	var classes []model.ClassModel
	if err := db.
		Where("class_status = ? AND class_end_date >= ?", model.ClassStatusActive, today).
		Find(&classes).Error; err != nil {
		return nil, err
	}

	byRoom := make(map[string]*model.ClassModel, len(classes))
	for i := range classes {
		byRoom[classes[i].ClassRoomNumber] = &classes[i]
	}

	rooms := AllRoomNumbers()
	out := make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occ := RoomOccupancy{RoomNumber: room, Available: true}
		if cls, ok := byRoom[room]; ok {
			occ.Available = false
			occ.ClassID = &cls.ClassID
			occ.ClassName = &cls.ClassName
		}
		out = append(out, occ)
	}
	return out, nil
}
