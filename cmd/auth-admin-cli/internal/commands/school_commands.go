package commands

import (
	"fmt"
	"strconv"

	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"

	"github.com/spf13/cobra"
)

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "", 0, "Maximum number of rows")
	cmd.Flags().IntP("offset", "", 0, "Number of rows to skip")
	cmd.Flags().StringP("sort-by", "", "", "Column to sort by")
	cmd.Flags().StringP("sort-order", "", "", "asc or desc")
}

func readPaging(cmd *cobra.Command, query *paging.Query) {
	query.Limit, _ = cmd.Flags().GetInt("limit")
	query.Offset, _ = cmd.Flags().GetInt("offset")
	query.SortBy, _ = cmd.Flags().GetString("sort-by")
	query.SortOrder, _ = cmd.Flags().GetString("sort-order")
}

func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

// CreateHouseCmd creates a house
func (handler *CommandHandler) CreateHouseCmd(cmd *cobra.Command, args []string) error {
	house, err := handler.env.Houses.Create(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Created house %s with id %d", house.Name, house.ID)
	return nil
}

// ListHousesCmd prints every house with its number of members
func (handler *CommandHandler) ListHousesCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	query := &paging.Query{}
	readPaging(cmd, query)

	list, err := handler.env.Houses.List(ctx, query)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, h := range list {
		members, err := handler.env.Houses.CountMembers(ctx, h.ID)
		if err != nil {
			return err
		}
		rows = append(rows, []string{strconv.Itoa(h.ID), h.Name, strconv.FormatInt(members, 10)})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "Name", "Members"}, rows)
	return nil
}

// DeleteHouseCmd deletes a house; its members keep their accounts
func (handler *CommandHandler) DeleteHouseCmd(cmd *cobra.Command, args []string) error {
	houseID, err := parseID("house", args[0])
	if err != nil {
		return err
	}
	if err := handler.env.Houses.DeleteByID(cmd.Context(), houseID); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Deleted house %d", houseID)
	return nil
}

// CreateCourseCmd creates a course
func (handler *CommandHandler) CreateCourseCmd(cmd *cobra.Command, args []string) error {
	course, err := handler.env.Courses.Create(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Created course %s with id %d", course.Name, course.ID)
	return nil
}

// ListCoursesCmd prints every course
func (handler *CommandHandler) ListCoursesCmd(cmd *cobra.Command, _ []string) error {
	query := &paging.Query{}
	readPaging(cmd, query)

	list, err := handler.env.Courses.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "Name"}, rows)
	return nil
}

// DeleteCourseCmd deletes a course and its enrollments
func (handler *CommandHandler) DeleteCourseCmd(cmd *cobra.Command, args []string) error {
	courseID, err := parseID("course", args[0])
	if err != nil {
		return err
	}
	if err := handler.env.Courses.DeleteByID(cmd.Context(), courseID); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Deleted course %d", courseID)
	return nil
}

// AddEnrollmentCmd enrolls a student in a course
func (handler *CommandHandler) AddEnrollmentCmd(cmd *cobra.Command, _ []string) error {
	studentID, _ := cmd.Flags().GetInt("student")
	courseID, _ := cmd.Flags().GetInt("course")
	grade, _ := cmd.Flags().GetString("grade")

	enrollment, err := handler.env.Enrollments.Enroll(cmd.Context(), studentID, courseID, grade)
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Enrolled student %d in course %d", enrollment.StudentID, enrollment.CourseID)
	return nil
}

// ListEnrollmentsCmd prints the enrollments matching the filter flags
func (handler *CommandHandler) ListEnrollmentsCmd(cmd *cobra.Command, _ []string) error {
	query := &enrollments.EnrollmentQuery{}
	query.StudentID, _ = cmd.Flags().GetInt("student")
	query.CourseID, _ = cmd.Flags().GetInt("course")
	readPaging(cmd, &query.Query)

	list, err := handler.env.Enrollments.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		course := strconv.Itoa(e.CourseID)
		if e.Course != nil {
			course = e.Course.Name
		}
		rows = append(rows, []string{strconv.Itoa(e.StudentID), course, e.Grade})
	}
	printTable(cmd.OutOrStdout(), []string{"Student", "Course", "Grade"}, rows)
	return nil
}

// RemoveEnrollmentCmd withdraws a student from a course
func (handler *CommandHandler) RemoveEnrollmentCmd(cmd *cobra.Command, _ []string) error {
	studentID, _ := cmd.Flags().GetInt("student")
	courseID, _ := cmd.Flags().GetInt("course")

	if err := handler.env.Enrollments.Withdraw(cmd.Context(), studentID, courseID); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Withdrew student %d from course %d", studentID, courseID)
	return nil
}

// InitHouseCommands registers the houses command group
func InitHouseCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	housesCmd := handler.group("houses", "Manage houses")

	housesCmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create a house",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.CreateHouseCmd,
	})

	var listHousesCmd = &cobra.Command{
		Use:   "list",
		Short: "List houses and their member counts",
		Args:  cobra.NoArgs,
		RunE:  handler.ListHousesCmd,
	}
	addPagingFlags(listHousesCmd)
	housesCmd.AddCommand(listHousesCmd)

	housesCmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a house",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteHouseCmd,
	})

	rootCmd.AddCommand(housesCmd)
}

// InitCourseCommands registers the courses command group
func InitCourseCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	coursesCmd := handler.group("courses", "Manage courses")

	coursesCmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create a course",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.CreateCourseCmd,
	})

	var listCoursesCmd = &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE:  handler.ListCoursesCmd,
	}
	addPagingFlags(listCoursesCmd)
	coursesCmd.AddCommand(listCoursesCmd)

	coursesCmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a course and its enrollments",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteCourseCmd,
	})

	rootCmd.AddCommand(coursesCmd)
}

// InitEnrollmentCommands registers the enrollments command group
func InitEnrollmentCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	enrollmentsCmd := handler.group("enrollments", "Manage class enrollments")

	var addEnrollmentCmd = &cobra.Command{
		Use:   "add",
		Short: "Enroll a student in a course",
		Args:  cobra.NoArgs,
		RunE:  handler.AddEnrollmentCmd,
	}
	addEnrollmentCmd.Flags().IntP("student", "", 0, "User id of the student")
	addEnrollmentCmd.Flags().IntP("course", "", 0, "Course id")
	addEnrollmentCmd.Flags().StringP("grade", "", "", "Grade, e.g. O, E or A")
	_ = addEnrollmentCmd.MarkFlagRequired("student")
	_ = addEnrollmentCmd.MarkFlagRequired("course")
	enrollmentsCmd.AddCommand(addEnrollmentCmd)

	var listEnrollmentsCmd = &cobra.Command{
		Use:   "list",
		Short: "List enrollments",
		Args:  cobra.NoArgs,
		RunE:  handler.ListEnrollmentsCmd,
	}
	listEnrollmentsCmd.Flags().IntP("student", "", 0, "Only enrollments of this student")
	listEnrollmentsCmd.Flags().IntP("course", "", 0, "Only enrollments in this course")
	addPagingFlags(listEnrollmentsCmd)
	enrollmentsCmd.AddCommand(listEnrollmentsCmd)

	var removeEnrollmentCmd = &cobra.Command{
		Use:   "remove",
		Short: "Withdraw a student from a course",
		Args:  cobra.NoArgs,
		RunE:  handler.RemoveEnrollmentCmd,
	}
	removeEnrollmentCmd.Flags().IntP("student", "", 0, "User id of the student")
	removeEnrollmentCmd.Flags().IntP("course", "", 0, "Course id")
	_ = removeEnrollmentCmd.MarkFlagRequired("student")
	_ = removeEnrollmentCmd.MarkFlagRequired("course")
	enrollmentsCmd.AddCommand(removeEnrollmentCmd)

	rootCmd.AddCommand(enrollmentsCmd)
}
