package commands

import (
	"fmt"
	"strconv"

	"github.com/MGTheTrain/auth-admin/internal/domain/users"

	"github.com/spf13/cobra"
)

// CreateUserCmd registers a user together with the optional profile flags
func (handler *CommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	user := &users.User{}
	user.Username, _ = flags.GetString("username")
	user.Name, _ = flags.GetString("name")
	user.Address, _ = flags.GetString("address")
	user.Magical, _ = flags.GetBool("magical")
	user.Quidditch, _ = flags.GetBool("quidditch")
	if flags.Changed("house-id") {
		houseID, _ := flags.GetInt("house-id")
		user.HouseID = &houseID
	}
	password, _ := flags.GetString("password")

	if err := handler.env.Auth.CreateUser(cmd.Context(), user, password); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Created user %s with id %d", user.Username, user.ID)
	return nil
}

// ListUsersCmd prints the users matching the filter flags
func (handler *CommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	query := users.NewUserQuery()
	query.Username, _ = flags.GetString("username")
	if flags.Changed("house-id") {
		houseID, _ := flags.GetInt("house-id")
		query.HouseID = &houseID
	}
	readPaging(cmd, &query.Query)

	list, err := handler.env.UserService.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, u := range list {
		house := ""
		if u.HouseID != nil {
			house = strconv.Itoa(*u.HouseID)
		}
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Username, u.Name, house,
			strconv.FormatBool(u.Magical), strconv.FormatBool(u.Quidditch),
		})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "Username", "Name", "House", "Magical", "Quidditch"}, rows)
	return nil
}

// DeleteUserCmd deletes a user together with their enrollments and sessions
func (handler *CommandHandler) DeleteUserCmd(cmd *cobra.Command, args []string) error {
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	if err := handler.env.UserService.DeleteByID(cmd.Context(), userID); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Deleted user %d", userID)
	return nil
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	usersCmd := handler.group("users", "Manage users")

	var createUserCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a user with a hashed password",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "Unique username")
	createUserCmd.Flags().StringP("password", "", "", "Password, stored as bcrypt hash")
	createUserCmd.Flags().StringP("name", "", "", "Display name")
	createUserCmd.Flags().StringP("address", "", "", "Postal address")
	createUserCmd.Flags().IntP("house-id", "", 0, "House the user belongs to")
	createUserCmd.Flags().BoolP("magical", "", false, "Mark the user as magical")
	createUserCmd.Flags().BoolP("quidditch", "", false, "Mark the user as quidditch player")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	usersCmd.AddCommand(createUserCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE:  handler.ListUsersCmd,
	}
	listUsersCmd.Flags().StringP("username", "", "", "Only the user with this username")
	listUsersCmd.Flags().IntP("house-id", "", 0, "Only members of this house")
	addPagingFlags(listUsersCmd)
	usersCmd.AddCommand(listUsersCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteUserCmd,
	}
	usersCmd.AddCommand(deleteUserCmd)

	rootCmd.AddCommand(usersCmd)
}
