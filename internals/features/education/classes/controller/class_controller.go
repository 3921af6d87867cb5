package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/constants"
	parentModel "preschoolku_backend/internals/features/admission/parents/model"
	"preschoolku_backend/internals/features/education/classes/dto"
	accountModel "preschoolku_backend/internals/features/users/account/model"
	"preschoolku_backend/internals/features/education/classes/model"
	"preschoolku_backend/internals/features/education/classes/service"
	helper "preschoolku_backend/internals/helpers"
	helperAuth "preschoolku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate) (*T, error) {
	var payload T
	if err := c.BodyParser(&payload); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(&payload); err != nil {
		return nil, helper.JsonValidation(c, err)
	}
	return &payload, nil
}

// checkClassConflicts runs the write-time invariants shared by create and
// update. excludeID skips the class being updated.
func (ctl *ClassController) checkClassConflicts(c *fiber.Ctx, ent *model.ClassModel, excludeID uuid.UUID) error {
	var teacherCnt int64
	if err := ctl.DB.Model(&accountModel.AccountModel{}).
		Where("account_id = ? AND account_role = ? AND account_is_active = true", ent.ClassTeacherID, constants.RoleTeacher).
		Count(&teacherCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check teacher account")
	}
	if teacherCnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found or inactive")
	}

	nameQ := ctl.DB.Model(&model.ClassModel{}).Where("class_name = ?", ent.ClassName)
	if excludeID != uuid.Nil {
		nameQ = nameQ.Where("class_id <> ?", excludeID)
	}
	var cnt int64
	if err := nameQ.Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class name")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Class name is already in use")
	}

	conflict, err := service.TeacherYearConflict(ctl.DB, ent.ClassTeacherID, ent.ClassStartDate, excludeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check teacher assignment")
	}
	if conflict {
		return helper.JsonError(c, fiber.StatusConflict, "Teacher already has a class in this academic year")
	}

	conflict, err = service.RoomYearConflict(ctl.DB, ent.ClassRoomNumber, ent.ClassStartDate, excludeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check room assignment")
	}
	if conflict {
		return helper.JsonError(c, fiber.StatusConflict, "Room is already used by another class in this academic year")
	}
	return nil
}

// =======================
// Create / Update / Delete
// =======================

// POST /api/v1/education/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	payload, err := bindAndValidate[dto.ClassCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	ent := payload.ToModel()
	if err := ctl.checkClassConflicts(c, &ent, uuid.Nil); err != nil {
		return err
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created successfully", dto.FromModel(ent))
}

// PATCH /api/v1/education/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	payload, err := bindAndValidate[dto.ClassUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	payload.ApplyUpdates(&ent)
	if ent.ClassEndDate.Before(ent.ClassStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class end date must not be before start date")
	}
	if err := ctl.checkClassConflicts(c, &ent, ent.ClassID); err != nil {
		return err
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated successfully", dto.FromModel(ent))
}

// DELETE /api/v1/education/classes/:id
// Removes the class and its enrollments in one transaction.
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_class_class_id = ?", id).
			Delete(&model.StudentClassModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	return helper.JsonDeleted(c, "Class deleted successfully", fiber.Map{"class_id": id})
}

// =======================
// Read
// =======================

// GET /api/classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ClassModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("class_status = ?", strings.ToUpper(status))
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		tid, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id filter")
		}
		q = q.Where("class_teacher_id = ?", tid)
	}
	if grade := c.Query("grade"); grade != "" {
		q = q.Where("class_grade = ?", strings.ToLower(grade))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var list []model.ClassModel
	if err := q.Order("class_start_date DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list classes")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Classes fetched successfully", dto.FromModels(list), &pagination)
}

// GET /api/classes/:id
func (ctl *ClassController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	var enrolled int64
	if err := ctl.DB.Model(&model.StudentClassModel{}).
		Where("student_class_class_id = ?", id).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	resp := dto.FromModel(ent)
	resp.ClassEnrolledCount = &enrolled
	return helper.JsonOK(c, "Class fetched successfully", resp)
}

// GET /api/v1/teacher/classes
// Classes assigned to the requesting teacher account.
func (ctl *ClassController) ListMine(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var list []model.ClassModel
	if err := ctl.DB.
		Where("class_teacher_id = ?", teacherID).
		Order("class_start_date DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list classes")
	}

	return helper.JsonOK(c, "Classes fetched successfully", dto.FromModels(list))
}

// GET /api/rooms
func (ctl *ClassController) Rooms(c *fiber.Ctx) error {
	occupancy, err := service.ResolveRoomOccupancy(ctl.DB, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve room availability")
	}
	return helper.JsonOK(c, "Room availability fetched successfully", occupancy)
}

// =======================
// Enrollment
// =======================

// POST /api/v1/education/classes/:id/students
func (ctl *ClassController) EnrollStudent(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	payload, err := bindAndValidate[dto.EnrollStudentDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var cls model.ClassModel
	if err := ctl.DB.First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	var student parentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", payload.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var dup int64
	if err := ctl.DB.Model(&model.StudentClassModel{}).
		Where("student_class_student_id = ? AND student_class_class_id = ?", payload.StudentID, classID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student is already enrolled in this class")
	}

	var enrolled int64
	if err := ctl.DB.Model(&model.StudentClassModel{}).
		Where("student_class_class_id = ?", classID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}
	if enrolled >= int64(cls.ClassNumberStudent) {
		return helper.JsonError(c, fiber.StatusConflict, "Class is already at full capacity")
	}

	ent := model.StudentClassModel{
		StudentClassStudentID: payload.StudentID,
		StudentClassClassID:   classID,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll student")
	}

	return helper.JsonCreated(c, "Student enrolled successfully", ent)
}

// DELETE /api/v1/education/classes/:id/students/:studentId
func (ctl *ClassController) RemoveStudent(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.Where("student_class_class_id = ? AND student_class_student_id = ?", classID, studentID).
		Delete(&model.StudentClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove student from class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	return helper.JsonDeleted(c, "Student removed from class successfully", fiber.Map{
		"class_id":   classID,
		"student_id": studentID,
	})
}

// GET /api/v1/education/classes/:id/students
func (ctl *ClassController) ListStudents(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var students []parentModel.StudentModel
	if err := ctl.DB.
		Joins("JOIN student_classes ON student_classes.student_class_student_id = students.student_id").
		Where("student_classes.student_class_class_id = ? AND student_classes.student_class_deleted_at IS NULL", classID).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list class students")
	}

	return helper.JsonOK(c, "Class students fetched successfully", students)
}
