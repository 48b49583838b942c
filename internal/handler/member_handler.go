package handler

import (
	"net/http"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

func (h *Handler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.RegisterMember(r.Context(), &domain.Member{
		Email:  req.Email,
		Handle: req.Handle,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

// GetMember ищет участника по handle или по email
func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	handle := r.URL.Query().Get("handle")
	email := r.URL.Query().Get("email")

	var (
		member *domain.Member
		err    error
	)
	switch {
	case handle != "":
		member, err = h.memberService.GetByHandle(r.Context(), handle)
	case email != "":
		member, err = h.memberService.GetByEmail(r.Context(), email)
	default:
		err = domain.NewBadRequestError("handle or email parameter is required")
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}
