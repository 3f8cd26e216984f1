package handlers

// @tag.name users
// @tag.description User processing operations
