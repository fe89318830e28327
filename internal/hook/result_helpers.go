package hook

func NewResult(repoDir, hookID string, status Status, message string) Result {
	res := Result{
		Status:  status,
		RepoDir: repoDir,
		HookID:  hookID,
	}
	if message != "" {
		res.Message = message
	}
	return res
}

func PassResult(repoDir, hookID string) Result {
	return NewResult(repoDir, hookID, StatusPass, "")
}

func PassResultWithMessage(repoDir, hookID, message string) Result {
	return NewResult(repoDir, hookID, StatusPass, message)
}

func FailResult(repoDir, hookID, message string) Result {
	return NewResult(repoDir, hookID, StatusFail, message)
}

func ErrorResult(repoDir, hookID, message string) Result {
	return NewResult(repoDir, hookID, StatusError, message)
}

func SkippedResult(repoDir, hookID, message string) Result {
	return NewResult(repoDir, hookID, StatusSkipped, message)
}

func FailResultWithFindings(repoDir, hookID, message string, findings []Finding) Result {
	res := NewResult(repoDir, hookID, StatusFail, message)
	res.Findings = findings
	return res
}

func PassResultWithMetadata(repoDir, hookID, message string, metadata map[string]any) Result {
	res := NewResult(repoDir, hookID, StatusPass, message)
	res.Metadata = metadata
	return res
}
