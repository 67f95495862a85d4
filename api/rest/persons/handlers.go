package persons

import (
	"net/http"
	"strconv"

	"codeberg.org/moneyapi/server/internal/errors"
	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/gin-gonic/gin"
)

// ListPersonsHandler godoc
// @Summary List persons
// @Tags persons
// @Produce json
// @Success 200 {array} persons.Person
// @Router /api/v1/persons [get]
func ListPersonsHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetPersonHandler godoc
// @Summary Get a person
// @Tags persons
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} persons.Person
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/persons/{id} [get]
func GetPersonHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		person, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, person)
	}
}

// CreatePersonHandler godoc
// @Summary Create a person
// @Tags persons
// @Accept json
// @Produce json
// @Param request body persons.PersonRequest true "Person data"
// @Success 201 {object} persons.Person
// @Failure 400 {array} errors.ErrorEntry
// @Router /api/v1/persons [post]
// @Security BearerAuth
func CreatePersonHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req persons.PersonRequest
		if err := errors.Bind(c, &req); err != nil {
			_ = c.Error(err)
			return
		}

		person, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.Header("Location", c.Request.URL.Path+"/"+strconv.FormatInt(person.ID, 10))
		c.JSON(http.StatusCreated, person)
	}
}

// UpdatePersonHandler godoc
// @Summary Replace a person
// @Tags persons
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param request body persons.PersonRequest true "Person data"
// @Success 200 {object} persons.Person
// @Failure 400 {array} errors.ErrorEntry
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/persons/{id} [put]
// @Security BearerAuth
func UpdatePersonHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		var req persons.PersonRequest
		if err := errors.Bind(c, &req); err != nil {
			_ = c.Error(err)
			return
		}

		person, err := repo.Update(c.Request.Context(), id, req)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, person)
	}
}

// SetActiveHandler godoc
// @Summary Activate or deactivate a person
// @Tags persons
// @Accept json
// @Param id path int true "Person ID"
// @Param request body ActiveRequest true "Active flag"
// @Success 204
// @Failure 400 {array} errors.ErrorEntry
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/persons/{id}/active [put]
// @Security BearerAuth
func SetActiveHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		var req ActiveRequest
		if err := errors.Bind(c, &req); err != nil {
			_ = c.Error(err)
			return
		}

		if err := repo.SetActive(c.Request.Context(), id, *req.Active); err != nil {
			_ = c.Error(err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// DeletePersonHandler godoc
// @Summary Delete a person
// @Description Fails with 400 while the person still has entries
// @Tags persons
// @Param id path int true "Person ID"
// @Success 204
// @Failure 400 {array} errors.ErrorEntry
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/persons/{id} [delete]
// @Security BearerAuth
func DeletePersonHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
