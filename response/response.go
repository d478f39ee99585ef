package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response define la estructura del response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define la estructura de paginación
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type ResponseTotal struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Total      int         `json:"total"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success regresa un response exitoso
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Éxito",
		Total: total,
		Data:  data,
	})
}

// SuccessWithPagination regresa un response exitoso paginado
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Created regresa 201 con el recurso creado
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

// Error regresa un response de error. El campo error se duplica en el
// body porque el front viejo lee { error } directo.
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:  code,
		Mess:  message,
		Error: message,
	})
}

// ServerError regresa un error de servidor
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:  0,
		Mess:  "Error del servidor",
		Error: "Error del servidor",
	})
}

// Unauthorized regresa un response sin autenticación
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:  0,
		Mess:  "No autenticado",
		Error: "No autenticado",
	})
}

// Forbidden regresa un response sin permisos
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:  0,
		Mess:  "Sin permiso de acceso",
		Error: "Sin permiso de acceso",
	})
}

// NotFound regresa un response no encontrado
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code:  0,
		Mess:  "No encontrado",
		Error: "No encontrado",
	})
}

// ValidationError regresa un error de validación
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:  0,
		Mess:  message,
		Error: message,
	})
}

// BadRequest regresa un error de bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:  0,
		Mess:  message,
		Error: message,
	})
}

// Conflict regresa un response de conflicto (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code:  0,
		Mess:  message,
		Error: message,
	})
}
