package workschedule

type UpsertWorkScheduleRequest struct {
	Jabatan   string `json:"jabatan" binding:"required"`
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	JamMasuk  string `json:"jam_masuk" binding:"required_unless=IsDayOff true"`
	JamPulang string `json:"jam_pulang" binding:"required_unless=IsDayOff true"`
	IsDayOff  bool   `json:"is_day_off"`
}

type WorkScheduleResponse struct {
	ID        string `json:"id"`
	Jabatan   string `json:"jabatan"`
	Weekday   int    `json:"weekday"`
	JamMasuk  string `json:"jam_masuk,omitempty"`
	JamPulang string `json:"jam_pulang,omitempty"`
	IsDayOff  bool   `json:"is_day_off"`
}
