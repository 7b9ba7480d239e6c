package userControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/vedseem-infohub/Yelo-Backend/store"
)

// ExportUsersToExcel streams the full user list (with order rollups) as an
// xlsx download for offline admin reporting.
// GET /users/admin/export-excel
func ExportUsersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		total, err := s.Users.CountAll(ctx)
		if err != nil {
			failUsers(c, err, "Failed to fetch users")
			return
		}
		users, err := s.Users.List(ctx, 0, total)
		if err != nil {
			failUsers(c, err, "Failed to fetch users")
			return
		}
		rows, err := attachOrderStats(c, s, users)
		if err != nil {
			failUsers(c, err, "Failed to fetch users")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Users")
		if err != nil {
			failUsers(c, err, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "Name", "Email", "Phone", "Active", "ProfileComplete",
			"TotalOrders", "TotalRevenue", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, u := range rows {
			row := sheet.AddRow()
			row.AddCell().SetValue(u.ID.Hex())
			row.AddCell().SetValue(u.Name)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.Phone)
			row.AddCell().SetValue(u.IsActive)
			row.AddCell().SetValue(u.IsProfileComplete)
			row.AddCell().SetValue(u.TotalOrders)
			row.AddCell().SetValue(u.TotalRevenue)
			row.AddCell().SetValue(u.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=users.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			failUsers(c, err, "Failed to write Excel file")
			return
		}
	}
}
