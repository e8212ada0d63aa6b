package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Video queries

//go:embed sql/select_video_by_path.sql
var SelectVideoByPathSQL string

//go:embed sql/insert_video.sql
var InsertVideoSQL string

//go:embed sql/update_video_duration.sql
var UpdateVideoDurationSQL string

// Trim queries

//go:embed sql/insert_trim.sql
var InsertTrimSQL string

//go:embed sql/select_trims_by_video_path.sql
var SelectTrimsByVideoPathSQL string

//go:embed sql/select_all_trims.sql
var SelectAllTrimsSQL string

//go:embed sql/select_trim_by_id.sql
var SelectTrimByIDSQL string

//go:embed sql/delete_trim.sql
var DeleteTrimSQL string
