package handler

import (
	"io"
	"net/http"
	"strconv"

	"clinicore/internal/usecase"
	"clinicore/pkg/response"

	"github.com/gorilla/mux"
)

// maxUploadSize bounds the multipart memory buffer for image uploads.
const maxUploadSize = 32 << 20 // 32 MB

type ImageHandler struct {
	imageUsecase usecase.ImageUsecase
}

func NewImageHandler(imageUsecase usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{imageUsecase: imageUsecase}
}

// Upload accepts a multipart form with fields patient_id, image_type and the
// file itself under "file".
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	patientID, err := strconv.ParseInt(r.FormValue("patient_id"), 10, 64)
	if err != nil || patientID <= 0 {
		response.BadRequest(w, "Invalid patient_id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(w, "Failed to read image file")
		return
	}

	result, err := h.imageUsecase.Upload(r.Context(), &usecase.UploadImageInput{
		PatientID:   patientID,
		ImageType:   r.FormValue("image_type"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		switch err {
		case usecase.ErrInvalidImageType:
			response.BadRequest(w, "Invalid image type")
		case usecase.ErrEmptyImageFile:
			response.BadRequest(w, "Image file is empty")
		default:
			response.InternalServerError(w, "Failed to upload image")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Image uploaded successfully", result)
}

func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	image, err := h.imageUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrImageNotFound:
			response.NotFound(w, "Image not found")
		default:
			response.InternalServerError(w, "Failed to get image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Image retrieved successfully", image)
}

func (h *ImageHandler) GetImageURL(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	var expiresIn int64
	if raw := r.URL.Query().Get("expires_in"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid expires_in")
			return
		}
		expiresIn = parsed
	}

	result, err := h.imageUsecase.GetURL(r.Context(), id, expiresIn)
	if err != nil {
		switch err {
		case usecase.ErrImageNotFound:
			response.NotFound(w, "Image not found")
		default:
			response.InternalServerError(w, "Failed to presign image URL")
		}
		return
	}

	response.Success(w, http.StatusOK, "Image URL generated successfully", result)
}

func (h *ImageHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list images")
		return
	}

	response.Success(w, http.StatusOK, "Images retrieved successfully", images)
}

func (h *ImageHandler) GetPatientImages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	images, err := h.imageUsecase.GetByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient images")
		return
	}

	response.Success(w, http.StatusOK, "Images retrieved successfully", images)
}

func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.imageUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrImageNotFound:
			response.NotFound(w, "Image not found")
		default:
			response.InternalServerError(w, "Failed to delete image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Image deleted successfully", nil)
}
